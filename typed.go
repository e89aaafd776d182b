package projected

import (
	"github.com/paulmach/orb"
)

// Typed pairs a geometry of shape G with the coordinate reference system C
// its coordinates are expressed in. Values are immutable: conversions
// return new values and the inner geometry is only handed out as a copy.
//
// The zero value holds a zero geometry and an empty definition; use New or
// a conversion to obtain a meaningful value.
type Typed[G Shape, C CRS] struct {
	geom G
	def  string
}

// Point, Polygon and MultiPolygon name the three wrapper shapes.
type (
	Point[C CRS]        = Typed[orb.Point, C]
	Polygon[C CRS]      = Typed[orb.Polygon, C]
	MultiPolygon[C CRS] = Typed[orb.MultiPolygon, C]
)

// New wraps a longitude/latitude geometry. It is the only constructor:
// every other tag is reached through a conversion.
func New[G Shape](g G) Typed[G, Unprojected] {
	return Typed[G, Unprojected]{geom: clone(g), def: UnprojectedID}
}

func NewPoint(p orb.Point) Point[Unprojected] { return New(p) }

func NewPolygon(p orb.Polygon) Polygon[Unprojected] { return New(p) }

func NewMultiPolygon(mp orb.MultiPolygon) MultiPolygon[Unprojected] { return New(mp) }

// Value returns a copy of the wrapped geometry.
func (t Typed[G, C]) Value() G {
	return clone(t.geom)
}

// Definition returns the engine identifier of the system the coordinates
// are in: UnprojectedID, PlanarID, or the descriptor an EqualArea value
// was built with.
func (t Typed[G, C]) Definition() string {
	return t.def
}

// CRS returns the tag of t.
func (t Typed[G, C]) CRS() C {
	var c C
	return c
}

// Shape returns the shape discriminant of t.
func (t Typed[G, C]) Shape() ShapeKind {
	return shapeOf(t.geom)
}

// Centroid returns the centroid of the wrapped geometry in the same system
// as its coordinates. Empty polygons and multi-polygons fail with
// ErrEmptyGeometry.
func (t Typed[G, C]) Centroid() (orb.Point, error) {
	return centroid(t.geom)
}

// Equal reports whether both values hold equal geometries in the same system.
func (t Typed[G, C]) Equal(o Typed[G, C]) bool {
	return t.def == o.def && orb.Equal(t.geom, o.geom)
}

func (t Typed[G, C]) String() string {
	var c C
	return c.String() + " " + shapeOf(t.geom).String()
}

// clone copies g. orb.Clone turns nil polygons and multi-polygons into a
// nil orb.Geometry, which comes back as the zero G.
func clone[G Shape](g G) G {
	if c, ok := orb.Clone(g).(G); ok {
		return c
	}
	var zero G
	return zero
}
