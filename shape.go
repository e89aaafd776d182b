package projected

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// Shape is the closed set of geometry types a Typed wrapper can hold.
type Shape interface {
	orb.Point | orb.Polygon | orb.MultiPolygon
	orb.Geometry
}

// ShapeKind identifies which member of the closed set a geometry is.
type ShapeKind int

const (
	ShapeUnsupported ShapeKind = iota
	ShapePoint
	ShapePolygon
	ShapeMultiPolygon
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePoint:
		return "point"
	case ShapePolygon:
		return "polygon"
	case ShapeMultiPolygon:
		return "multi-polygon"
	default:
		return "unsupported"
	}
}

// ShapeOf returns the kind of g. Geometries outside the closed set, nil
// included, return ShapeUnsupported and an error matching ErrUnsupportedShape.
func ShapeOf(g orb.Geometry) (ShapeKind, error) {
	switch g.(type) {
	case orb.Point:
		return ShapePoint, nil
	case orb.Polygon:
		return ShapePolygon, nil
	case orb.MultiPolygon:
		return ShapeMultiPolygon, nil
	case nil:
		return ShapeUnsupported, errors.Wrap(ErrUnsupportedShape, "nil geometry")
	default:
		return ShapeUnsupported, errors.Wrapf(ErrUnsupportedShape, "%T", g)
	}
}

// shapeOf is ShapeOf for the closed set, where it cannot fail.
func shapeOf[G Shape](g G) ShapeKind {
	k, _ := ShapeOf(g)
	return k
}
