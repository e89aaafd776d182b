package projected_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/projected"
	"github.com/pspoerri/projected/internal/testutil"
)

const fixturePath = "testdata/geometries.yaml"

// degreeTolerance is roughly 0.1 m on the ground.
var degreeTolerance = cmpopts.EquateApprox(0, 1e-6)

func wyoming() orb.Polygon {
	return orb.Polygon{{{-111, 45}, {-111, 41}, {-104, 41}, {-104, 45}, {-111, 45}}}
}

func TestNew(t *testing.T) {
	poly := wyoming()
	p := projected.NewPolygon(poly)

	assert.Equal(t, projected.UnprojectedID, p.Definition())
	assert.Equal(t, projected.ShapePolygon, p.Shape())
	assert.Equal(t, projected.Unprojected{}, p.CRS())
	assert.Equal(t, "Unprojected polygon", p.String())
	assert.True(t, p.Value().Equal(poly))
}

func TestNew_CopiesInput(t *testing.T) {
	poly := wyoming()
	p := projected.New(poly)

	poly[0][0] = orb.Point{0, 0}
	assert.True(t, p.Value().Equal(wyoming()), "mutating the input changed the wrapper")

	v := p.Value()
	v[0][1] = orb.Point{0, 0}
	assert.True(t, p.Value().Equal(wyoming()), "mutating Value() changed the wrapper")
}

func TestNew_EmptyShapes(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"nil polygon", func(t *testing.T) {
			p := projected.NewPolygon(nil)
			assert.Equal(t, projected.ShapePolygon, p.Shape())
			assert.Empty(t, p.Value())
		}},
		{"empty polygon", func(t *testing.T) {
			p := projected.NewPolygon(orb.Polygon{})
			assert.Empty(t, p.Value())
		}},
		{"nil multi-polygon", func(t *testing.T) {
			p := projected.NewMultiPolygon(nil)
			assert.Equal(t, projected.ShapeMultiPolygon, p.Shape())
			assert.Empty(t, p.Value())
		}},
		{"empty multi-polygon", func(t *testing.T) {
			p := projected.NewMultiPolygon(orb.MultiPolygon{})
			assert.Empty(t, p.Value())
		}},
		{"zero value", func(t *testing.T) {
			var p projected.Polygon[projected.Unprojected]
			assert.Empty(t, p.Value())
			assert.Empty(t, p.Definition())
		}},
		{"nil polygon converts", func(t *testing.T) {
			q, err := projected.ToPlanar(projected.NewPolygon(nil))
			require.NoError(t, err)
			assert.Empty(t, q.Value())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { tt.check(t) })
		})
	}
}

func TestEqual(t *testing.T) {
	a := projected.NewPolygon(wyoming())
	b := projected.NewPolygon(wyoming())
	assert.True(t, a.Equal(b))

	c := projected.NewPolygon(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	assert.False(t, a.Equal(c))
}

func TestToPlanar_ChangesCoordinates(t *testing.T) {
	p := projected.NewPoint(orb.Point{2.0, 2.1})

	q, err := projected.ToPlanar(p)
	require.NoError(t, err)

	assert.Equal(t, projected.PlanarID, q.Definition())
	assert.Equal(t, projected.ShapePoint, q.Shape())
	assert.NotEqual(t, orb.Point{2.0, 2.1}, q.Value())
	assert.Equal(t, orb.Point{2.0, 2.1}, p.Value(), "source changed by the conversion")
}

func TestToPlanar_KnownValue(t *testing.T) {
	q, err := projected.ToPlanar(projected.NewPoint(orb.Point{5, 50}))
	require.NoError(t, err)

	got := q.Value()
	assert.InDelta(t, 3962799.45, got.X(), 0.01)
	assert.InDelta(t, 2999718.85, got.Y(), 0.01)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range testutil.LoadFixtures(t, fixturePath) {
		t.Run(f.Name, func(t *testing.T) {
			switch g := f.Geometry.(type) {
			case orb.Point:
				assertRoundTrip(t, projected.New(g))
			case orb.Polygon:
				assertRoundTrip(t, projected.New(g))
			case orb.MultiPolygon:
				assertRoundTrip(t, projected.New(g))
			default:
				t.Skipf("%T is not a typed shape", g)
			}
		})
	}
}

func assertRoundTrip[G projected.Shape](t *testing.T, p projected.Typed[G, projected.Unprojected]) {
	t.Helper()

	q, err := projected.ToPlanar(p)
	require.NoError(t, err)
	assert.Equal(t, p.Shape(), q.Shape())
	assert.NotEqual(t, testutil.Coords(p.Value()), testutil.Coords(q.Value()))

	r, err := projected.ToUnprojected(q)
	require.NoError(t, err)
	assert.Equal(t, projected.UnprojectedID, r.Definition())

	if diff := cmp.Diff(testutil.Coords(p.Value()), testutil.Coords(r.Value()), degreeTolerance); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToEqualAreaAt_Descriptor(t *testing.T) {
	reference := projected.NewPoint(orb.Point{-111.0, 43.0})

	a, err := projected.ToEqualAreaAt(projected.NewPolygon(wyoming()), reference)
	require.NoError(t, err)

	assert.Contains(t, a.Definition(), "lat_0=43")
	assert.Contains(t, a.Definition(), "lon_0=-111")
	assert.Equal(t, projected.EqualAreaDescriptor(43, -111), a.Definition())
	assert.Equal(t, projected.ShapePolygon, a.Shape())
}

func TestToEqualAreaAt_AnchorMapsToOrigin(t *testing.T) {
	p := projected.NewPoint(orb.Point{-111, 43})

	a, err := projected.ToEqualAreaAt(p, p)
	require.NoError(t, err)

	got := a.Value()
	assert.InDelta(t, 0, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Y(), 1e-6)
}

func TestToEqualAreaAt_PlanarSourceMatchesUnprojected(t *testing.T) {
	poly := projected.NewPolygon(wyoming())
	reference := projected.Reference(wyoming())

	direct, err := projected.ToEqualAreaAt(poly, reference)
	require.NoError(t, err)

	planar, err := projected.ToPlanar(poly)
	require.NoError(t, err)
	viaPlanar, err := projected.ToEqualAreaAt(planar, reference)
	require.NoError(t, err)

	assert.Equal(t, direct.Definition(), viaPlanar.Definition())
	// Metres: the detour through EPSG:3035 costs well under a centimetre.
	if diff := cmp.Diff(testutil.Coords(direct.Value()), testutil.Coords(viaPlanar.Value()), cmpopts.EquateApprox(0, 1e-2)); diff != "" {
		t.Errorf("equal-area results differ (-direct +via planar):\n%s", diff)
	}
}

func TestConversionErrors(t *testing.T) {
	t.Run("zero value has no definition", func(t *testing.T) {
		var p projected.Point[projected.Unprojected]
		_, err := projected.ToPlanar(p)
		require.ErrorIs(t, err, projected.ErrTransformConstruction)
		assert.NotErrorIs(t, err, projected.ErrTransformApplication)
	})

	t.Run("non-finite anchor", func(t *testing.T) {
		p := projected.NewPoint(orb.Point{-111, 43})
		_, err := projected.ToEqualAreaAt(p, projected.Reference(orb.Point{math.NaN(), 43}))
		require.ErrorIs(t, err, projected.ErrTransformConstruction)
	})

	t.Run("planar anchor", func(t *testing.T) {
		// A centroid in metres is not a latitude.
		p := projected.NewPoint(orb.Point{5, 50})
		q, err := projected.ToPlanar(p)
		require.NoError(t, err)

		_, err = projected.ToEqualAreaAt(p, q)
		require.ErrorIs(t, err, projected.ErrTransformConstruction)
	})

	t.Run("latitude beyond the pole", func(t *testing.T) {
		_, err := projected.ToPlanar(projected.NewPoint(orb.Point{0, 95}))
		require.ErrorIs(t, err, projected.ErrTransformApplication)
		assert.NotErrorIs(t, err, projected.ErrTransformConstruction)
	})

	t.Run("polygon vertex beyond the pole", func(t *testing.T) {
		poly := projected.NewPolygon(orb.Polygon{{{0, 0}, {1, 0}, {1, 91}, {0, 0}}})
		_, err := projected.ToPlanar(poly)
		require.ErrorIs(t, err, projected.ErrTransformApplication)
	})

	t.Run("equal-area reference", func(t *testing.T) {
		// Its centroid sits at the equal-area origin, which in degrees
		// would be a valid but wrong anchor.
		p := projected.NewPoint(orb.Point{5, 50})
		a, err := projected.ToEqualAreaAt(p, p)
		require.NoError(t, err)

		_, err = projected.ToEqualAreaAt(p, a)
		require.ErrorIs(t, err, projected.ErrTransformConstruction)
	})

	t.Run("zero value reference", func(t *testing.T) {
		p := projected.NewPoint(orb.Point{5, 50})
		_, err := projected.ToEqualAreaAt(p, projected.Point[projected.Unprojected]{})
		require.ErrorIs(t, err, projected.ErrTransformConstruction)
	})

	t.Run("empty reference", func(t *testing.T) {
		p := projected.NewPoint(orb.Point{5, 50})
		_, err := projected.ToEqualAreaAt(p, projected.Reference(orb.Polygon{}))
		require.ErrorIs(t, err, projected.ErrEmptyGeometry)
	})

	t.Run("unsupported reference", func(t *testing.T) {
		p := projected.NewPoint(orb.Point{-111, 43})
		_, err := projected.ToEqualAreaAt(p, projected.Reference(orb.LineString{{0, 0}, {1, 1}}))
		require.ErrorIs(t, err, projected.ErrUnsupportedShape)
	})

	t.Run("nil reference", func(t *testing.T) {
		p := projected.NewPoint(orb.Point{-111, 43})
		_, err := projected.ToEqualAreaAt(p, nil)
		require.ErrorIs(t, err, projected.ErrUnsupportedShape)
	})
}

func TestConcurrentConversions(t *testing.T) {
	poly := projected.NewPolygon(wyoming())
	want, err := projected.ToPlanar(poly)
	require.NoError(t, err)

	const workers = 8
	results := make([]projected.Polygon[projected.Planar], workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = projected.ToPlanar(poly)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.True(t, want.Equal(results[i]), "worker %d disagrees", i)
	}
}
