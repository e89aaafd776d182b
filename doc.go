// Package projected tags orb geometries with the coordinate reference system
// their coordinates are expressed in, so that longitude/latitude values and
// projected values cannot be mixed up silently.
//
// # Tags
//
// A CRS tag is a zero-size type used as a type parameter:
//
//   - [Unprojected]: WGS84 longitude/latitude in degrees (EPSG:4326).
//   - [Planar]: ETRS89 / LAEA Europe in metres (EPSG:3035).
//   - [EqualArea]: a Lambert Azimuthal Equal-Area system centred on a point
//     chosen at conversion time. The centre is runtime data; see
//     [Typed.Definition].
//
// # Typed values
//
// [Typed] holds a point, polygon or multi-polygon together with its tag.
// [New] is the only constructor and always yields an Unprojected value.
// Every other tag is reached through a conversion, and conversions exist
// only for legal source tags:
//
//	p := projected.NewPoint(orb.Point{2.0, 2.1})    // Point[Unprojected]
//	q, err := projected.ToPlanar(p)                   // Point[Planar]
//	r, err := projected.ToUnprojected(q)              // Point[Unprojected]
//	a, err := projected.ToEqualAreaAt(q, reference)   // Point[EqualArea]
//
// ToPlanar(q) does not compile: a Planar value has no conversion to
// Planar. The legal source tags of each conversion are spelled out by the
// constraints [PlanarSource], [UnprojectedSource] and [EqualAreaSource].
//
// Values are immutable. [Typed.Value] returns a copy, and conversions
// return new values and leave their input untouched.
//
// # Errors
//
// Conversions return errors rather than panicking. Use errors.Is with
// [ErrTransformConstruction] when the systems could not be resolved,
// [ErrTransformApplication] when a coordinate could not be transformed,
// and [ErrUnsupportedShape] for geometries outside the closed set.
//
// # Logging
//
// The transform engine emits zerolog debug events when it builds and
// applies a transform. They are discarded unless a logger is installed
// with [SetLogger].
//
// Geometries whose shape is only known at runtime are handled by the
// dynamic subpackage.
package projected
