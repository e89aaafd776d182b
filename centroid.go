package projected

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Centroider is implemented by anything that can report a centroid. The
// centroid is in whatever system the source coordinates are in.
type Centroider interface {
	Centroid() (orb.Point, error)
}

var (
	_ Centroider = Typed[orb.Point, Unprojected]{}
	_ Centroider = Typed[orb.Polygon, Planar]{}
	_ Centroider = Typed[orb.MultiPolygon, EqualArea]{}
	_ Centroider = Reference(nil)
)

// Centroid returns the centroid of a point, polygon or multi-polygon.
// Other geometries return an error matching ErrUnsupportedShape, and
// polygons or multi-polygons without coordinates one matching
// ErrEmptyGeometry.
func Centroid(g orb.Geometry) (orb.Point, error) {
	if _, err := ShapeOf(g); err != nil {
		return orb.Point{}, err
	}
	return centroid(g)
}

func centroid(g orb.Geometry) (orb.Point, error) {
	if empty(g) {
		return orb.Point{}, errors.Wrapf(ErrEmptyGeometry, "%T has no centroid", g)
	}
	c, area := planar.CentroidArea(g)
	if mp, ok := g.(orb.MultiPolygon); ok && area == 0 {
		// Only degenerate members: fall back to the first one with coordinates.
		for _, p := range mp {
			if !empty(p) {
				c, _ = planar.CentroidArea(p)
				break
			}
		}
	}
	return c, nil
}

// empty reports whether g has no outer ring with coordinates.
func empty(g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.Polygon:
		return len(g) == 0 || len(g[0]) == 0
	case orb.MultiPolygon:
		for _, p := range g {
			if !empty(p) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Reference adapts a raw geometry into a Centroider, typically to anchor
// ToEqualAreaAt on a geometry that is not wrapped.
func Reference(g orb.Geometry) Centroider {
	return rawGeometry{g: cloneGeometry(g)}
}

// cloneGeometry is orb.Clone except that nil slices keep their type.
func cloneGeometry(g orb.Geometry) orb.Geometry {
	if c := orb.Clone(g); c != nil {
		return c
	}
	return g
}

type rawGeometry struct {
	g orb.Geometry
}

func (r rawGeometry) Centroid() (orb.Point, error) {
	return Centroid(r.g)
}
