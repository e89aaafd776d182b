package dynamic

import (
	"github.com/paulmach/orb"

	"github.com/pspoerri/projected"
)

// ToPlanar reprojects a longitude/latitude geometry into the planar system.
func ToPlanar[C projected.PlanarSource](g Geometry[C]) (Geometry[projected.Planar], error) {
	return convert(g,
		projected.ToPlanar[orb.Point, C],
		projected.ToPlanar[orb.Polygon, C],
		projected.ToPlanar[orb.MultiPolygon, C],
	)
}

// ToUnprojected reprojects a planar geometry back to longitude/latitude.
func ToUnprojected[C projected.UnprojectedSource](g Geometry[C]) (Geometry[projected.Unprojected], error) {
	return convert(g,
		projected.ToUnprojected[orb.Point, C],
		projected.ToUnprojected[orb.Polygon, C],
		projected.ToUnprojected[orb.MultiPolygon, C],
	)
}

// ToEqualAreaAt reprojects g into the equal-area system centred on the
// centroid of reference.
func ToEqualAreaAt[C projected.EqualAreaSource](g Geometry[C], reference projected.Centroider) (Geometry[projected.EqualArea], error) {
	return convert(g,
		equalAreaAt[orb.Point, C](reference),
		equalAreaAt[orb.Polygon, C](reference),
		equalAreaAt[orb.MultiPolygon, C](reference),
	)
}

// convert recovers the typed value of the active shape, applies the
// conversion for that shape and erases the result.
func convert[C, D projected.CRS](
	g Geometry[C],
	point func(projected.Typed[orb.Point, C]) (projected.Typed[orb.Point, D], error),
	polygon func(projected.Typed[orb.Polygon, C]) (projected.Typed[orb.Polygon, D], error),
	multiPolygon func(projected.Typed[orb.MultiPolygon, C]) (projected.Typed[orb.MultiPolygon, D], error),
) (Geometry[D], error) {
	switch t := g.inner.(type) {
	case projected.Typed[orb.Point, C]:
		out, err := point(t)
		if err != nil {
			return Geometry[D]{}, err
		}
		return Erase(out), nil
	case projected.Typed[orb.Polygon, C]:
		out, err := polygon(t)
		if err != nil {
			return Geometry[D]{}, err
		}
		return Erase(out), nil
	case projected.Typed[orb.MultiPolygon, C]:
		out, err := multiPolygon(t)
		if err != nil {
			return Geometry[D]{}, err
		}
		return Erase(out), nil
	default:
		return Geometry[D]{}, g.unsupported()
	}
}

func equalAreaAt[G projected.Shape, C projected.EqualAreaSource](reference projected.Centroider) func(projected.Typed[G, C]) (projected.Typed[G, projected.EqualArea], error) {
	return func(t projected.Typed[G, C]) (projected.Typed[G, projected.EqualArea], error) {
		return projected.ToEqualAreaAt(t, reference)
	}
}
