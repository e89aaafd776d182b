package projected

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/projected/internal/coord"
)

// ToPlanar reprojects a longitude/latitude value into the planar system.
// Engine failures are returned and match ErrTransformConstruction or
// ErrTransformApplication.
func ToPlanar[G Shape, C PlanarSource](v Typed[G, C]) (Typed[G, Planar], error) {
	return reproject[G, C, Planar](v, PlanarID)
}

// ToUnprojected reprojects a planar value back to longitude/latitude.
func ToUnprojected[G Shape, C UnprojectedSource](v Typed[G, C]) (Typed[G, Unprojected], error) {
	return reproject[G, C, Unprojected](v, UnprojectedID)
}

// ToEqualAreaAt reprojects v into a Lambert Azimuthal Equal-Area system
// centred on the centroid of reference, which must be in longitude/latitude.
// Planar values pass through longitude/latitude first.
//
// A reference that reports its system through a Definition method, as
// typed and dynamic values do, must be Unprojected; anything else fails
// with ErrTransformConstruction. References built with Reference are taken
// to be in longitude/latitude.
func ToEqualAreaAt[G Shape, C EqualAreaSource](v Typed[G, C], reference Centroider) (Typed[G, EqualArea], error) {
	if reference == nil {
		return Typed[G, EqualArea]{}, errors.Wrap(ErrUnsupportedShape, "nil equal-area reference")
	}
	anchor, err := reference.Centroid()
	if err != nil {
		return Typed[G, EqualArea]{}, errors.Wrap(err, "equal-area anchor")
	}
	if d, ok := reference.(interface{ Definition() string }); ok && d.Definition() != UnprojectedID {
		return Typed[G, EqualArea]{}, errors.Wrapf(ErrTransformConstruction,
			"equal-area reference in %q, want %s", d.Definition(), UnprojectedID)
	}

	src := Typed[G, Unprojected]{geom: v.geom, def: v.def}
	if _, ok := any(v.CRS()).(Planar); ok {
		src, err = reproject[G, C, Unprojected](v, UnprojectedID)
		if err != nil {
			return Typed[G, EqualArea]{}, err
		}
	}
	return reproject[G, Unprojected, EqualArea](src, EqualAreaDescriptor(anchor.Lat(), anchor.Lon()))
}

// reproject runs the engine from v's system to dst and tags the result D.
func reproject[G Shape, C, D CRS](v Typed[G, C], dst string) (Typed[G, D], error) {
	tr, err := coord.NewTransform(v.def, dst)
	if err != nil {
		return Typed[G, D]{}, err
	}
	out, err := tr.Geometry(v.geom)
	if err != nil {
		return Typed[G, D]{}, errors.Wrapf(err, "%s %s to %s", shapeOf(v.geom), v.def, dst)
	}
	g, ok := out.(G)
	if !ok {
		return Typed[G, D]{}, errors.Wrapf(ErrTransformApplication, "transform returned %T for %T", out, v.geom)
	}
	return Typed[G, D]{geom: g, def: dst}, nil
}
