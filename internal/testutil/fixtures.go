// Package testutil loads the shared geometry fixtures used by the tests.
package testutil

import (
	"os"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Fixture is a named geometry from testdata/geometries.yaml.
type Fixture struct {
	Name     string
	Shape    string
	Geometry orb.Geometry
}

// LoadFixtures reads a geometries.yaml file and decodes its GeoJSON members.
func LoadFixtures(t testing.TB, path string) []Fixture {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file struct {
		Geometries []struct {
			Name    string `yaml:"name"`
			Shape   string `yaml:"shape"`
			GeoJSON string `yaml:"geojson"`
		} `yaml:"geometries"`
	}
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.NotEmpty(t, file.Geometries)

	fixtures := make([]Fixture, 0, len(file.Geometries))
	for _, g := range file.Geometries {
		geom, err := geojson.UnmarshalGeometry([]byte(g.GeoJSON))
		require.NoError(t, err, g.Name)
		fixtures = append(fixtures, Fixture{Name: g.Name, Shape: g.Shape, Geometry: geom.Geometry()})
	}
	return fixtures
}

// Coords flattens the coordinates of a point, polygon or multi-polygon so
// they can be compared with a tolerance. orb types define Equal methods,
// which go-cmp would otherwise prefer over approximate float comparison.
func Coords(g orb.Geometry) []float64 {
	var out []float64
	switch g := g.(type) {
	case orb.Point:
		out = append(out, g[0], g[1])
	case orb.Polygon:
		for _, r := range g {
			for _, p := range r {
				out = append(out, p[0], p[1])
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			out = append(out, Coords(poly)...)
		}
	}
	return out
}
