// Package dynamic wraps geometries whose shape is only known at runtime
// while keeping their CRS tag in the type.
//
// A Geometry holds an erased projected.Typed value of the active shape.
// Conversions recover that value, run the typed conversion and erase the
// result again, so the shape never changes across a conversion.
package dynamic

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"

	"github.com/pspoerri/projected"
)

// Geometry is a CRS-tagged geometry of runtime shape.
type Geometry[C projected.CRS] struct {
	// inner is a projected.Typed[G, C] for the active shape, or the raw
	// orb.Geometry when the shape is outside the closed set.
	inner any
}

// New wraps a longitude/latitude geometry. Geometries outside the closed
// set of shapes are accepted here and rejected by every operation that
// needs the shape.
func New(g orb.Geometry) Geometry[projected.Unprojected] {
	switch g := g.(type) {
	case orb.Point:
		return Erase(projected.New(g))
	case orb.Polygon:
		return Erase(projected.New(g))
	case orb.MultiPolygon:
		return Erase(projected.New(g))
	case nil:
		return Geometry[projected.Unprojected]{}
	default:
		if c := orb.Clone(g); c != nil {
			return Geometry[projected.Unprojected]{inner: c}
		}
		return Geometry[projected.Unprojected]{inner: g}
	}
}

// Erase forgets the static shape of t.
func Erase[G projected.Shape, C projected.CRS](t projected.Typed[G, C]) Geometry[C] {
	return Geometry[C]{inner: t}
}

// Recover returns the typed value held by g. It fails with
// projected.ErrShapeMismatch when g holds another shape and with
// projected.ErrUnsupportedShape when g holds no supported shape.
func Recover[G projected.Shape, C projected.CRS](g Geometry[C]) (projected.Typed[G, C], error) {
	if t, ok := g.inner.(projected.Typed[G, C]); ok {
		return t, nil
	}
	shape := g.Shape()
	if shape == projected.ShapeUnsupported {
		return projected.Typed[G, C]{}, g.unsupported()
	}
	var zero G
	want, _ := projected.ShapeOf(zero)
	return projected.Typed[G, C]{}, errors.Wrapf(projected.ErrShapeMismatch, "want %s, have %s", want, shape)
}

// Shape returns the active shape discriminant.
func (g Geometry[C]) Shape() projected.ShapeKind {
	switch t := g.inner.(type) {
	case projected.Typed[orb.Point, C]:
		return t.Shape()
	case projected.Typed[orb.Polygon, C]:
		return t.Shape()
	case projected.Typed[orb.MultiPolygon, C]:
		return t.Shape()
	default:
		return projected.ShapeUnsupported
	}
}

// Value returns a copy of the wrapped geometry, whatever its shape.
func (g Geometry[C]) Value() orb.Geometry {
	switch t := g.inner.(type) {
	case projected.Typed[orb.Point, C]:
		return t.Value()
	case projected.Typed[orb.Polygon, C]:
		return t.Value()
	case projected.Typed[orb.MultiPolygon, C]:
		return t.Value()
	case orb.Geometry:
		if c := orb.Clone(t); c != nil {
			return c
		}
		return t
	default:
		return nil
	}
}

// Definition returns the engine identifier of the system the coordinates
// are in, or "" when the shape is unsupported.
func (g Geometry[C]) Definition() string {
	switch t := g.inner.(type) {
	case projected.Typed[orb.Point, C]:
		return t.Definition()
	case projected.Typed[orb.Polygon, C]:
		return t.Definition()
	case projected.Typed[orb.MultiPolygon, C]:
		return t.Definition()
	default:
		return ""
	}
}

// Centroid dispatches to the centroid of the active shape.
func (g Geometry[C]) Centroid() (orb.Point, error) {
	switch t := g.inner.(type) {
	case projected.Typed[orb.Point, C]:
		return t.Centroid()
	case projected.Typed[orb.Polygon, C]:
		return t.Centroid()
	case projected.Typed[orb.MultiPolygon, C]:
		return t.Centroid()
	default:
		return orb.Point{}, g.unsupported()
	}
}

func (g Geometry[C]) String() string {
	var c C
	return c.String() + " " + g.Shape().String()
}

func (g Geometry[C]) unsupported() error {
	if g.inner == nil {
		return errors.Wrap(projected.ErrUnsupportedShape, "nil geometry")
	}
	return errors.Wrapf(projected.ErrUnsupportedShape, "%T", g.inner)
}

var _ projected.Centroider = Geometry[projected.Planar]{}
