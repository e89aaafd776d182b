package coord

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// Transform moves coordinates from a source CRS to a destination CRS by
// way of WGS84 longitude/latitude.
type Transform struct {
	src Projection
	dst Projection
}

// NewTransform resolves both identifiers. Failures match ErrConstruction.
func NewTransform(src, dst string) (*Transform, error) {
	Logger().Debug().Str("src", src).Str("dst", dst).Msg("Constructing transform")

	from, err := Parse(src)
	if err != nil {
		Logger().Debug().Err(err).Str("src", src).Msg("Resolving source CRS failed")
		return nil, errors.Wrap(err, "source CRS")
	}
	to, err := Parse(dst)
	if err != nil {
		Logger().Debug().Err(err).Str("dst", dst).Msg("Resolving destination CRS failed")
		return nil, errors.Wrap(err, "destination CRS")
	}
	return &Transform{src: from, dst: to}, nil
}

func (t *Transform) Source() Projection      { return t.src }
func (t *Transform) Destination() Projection { return t.dst }

// Point transforms a single coordinate. Failures match ErrApplication.
func (t *Transform) Point(p orb.Point) (orb.Point, error) {
	lon, lat, err := t.src.ToWGS84(p[0], p[1])
	if err != nil {
		return orb.Point{}, errors.Wrapf(ErrApplication, "%s to WGS84: %v", t.src, err)
	}
	x, y, err := t.dst.FromWGS84(lon, lat)
	if err != nil {
		return orb.Point{}, errors.Wrapf(ErrApplication, "WGS84 to %s: %v", t.dst, err)
	}
	return orb.Point{x, y}, nil
}

// Geometry returns a transformed copy of g; g itself is left untouched.
// Every orb geometry type is accepted. The first failing coordinate aborts
// the whole geometry.
func (t *Transform) Geometry(g orb.Geometry) (orb.Geometry, error) {
	out, err := t.geometry(g)
	if err != nil {
		Logger().Debug().Err(err).Str("src", t.src.String()).Str("dst", t.dst.String()).Msg("Transform failed")
		return nil, err
	}
	return out, nil
}

func (t *Transform) geometry(g orb.Geometry) (orb.Geometry, error) {
	switch g := g.(type) {
	case nil:
		return nil, errors.Wrap(ErrApplication, "nil geometry")
	case orb.Point:
		return t.Point(g)
	case orb.MultiPoint:
		return t.points(g)
	case orb.LineString:
		ps, err := t.points(g)
		return orb.LineString(ps), err
	case orb.Ring:
		ps, err := t.points(g)
		return orb.Ring(ps), err
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			ps, err := t.points(ls)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i)
			}
			out[i] = orb.LineString(ps)
		}
		return out, nil
	case orb.Polygon:
		return t.polygon(g)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(g))
		for i, p := range g {
			poly, err := t.polygon(p)
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i)
			}
			out[i] = poly
		}
		return out, nil
	case orb.Collection:
		out := make(orb.Collection, len(g))
		for i, member := range g {
			tg, err := t.geometry(member)
			if err != nil {
				return nil, errors.Wrapf(err, "member %d", i)
			}
			out[i] = tg
		}
		return out, nil
	case orb.Bound:
		lo, err := t.Point(g.Min)
		if err != nil {
			return nil, err
		}
		hi, err := t.Point(g.Max)
		if err != nil {
			return nil, err
		}
		return orb.MultiPoint{lo, hi}.Bound(), nil
	default:
		return nil, errors.Wrapf(ErrApplication, "unsupported geometry type %T", g)
	}
}

func (t *Transform) points(ps []orb.Point) (orb.MultiPoint, error) {
	if ps == nil {
		return nil, nil
	}
	out := make(orb.MultiPoint, len(ps))
	for i, p := range ps {
		tp, err := t.Point(p)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		out[i] = tp
	}
	return out, nil
}

func (t *Transform) polygon(p orb.Polygon) (orb.Polygon, error) {
	if p == nil {
		return nil, nil
	}
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		ps, err := t.points(r)
		if err != nil {
			return nil, errors.Wrapf(err, "ring %d", i)
		}
		out[i] = orb.Ring(ps)
	}
	return out, nil
}
