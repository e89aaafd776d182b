package projected_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pspoerri/projected"
)

func TestEqualAreaDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{
			name: "integral degrees",
			lat:  43, lon: -111,
			want: "+proj=laea +lat_0=43 +lon_0=-111 +x_0=0 +y_0=0 +ellps=WGS84 +units=m +no_defs",
		},
		{
			name: "fractional degrees",
			lat:  52.5, lon: 10.25,
			want: "+proj=laea +lat_0=52.5 +lon_0=10.25 +x_0=0 +y_0=0 +ellps=WGS84 +units=m +no_defs",
		},
		{
			name: "origin",
			lat:  0, lon: 0,
			want: "+proj=laea +lat_0=0 +lon_0=0 +x_0=0 +y_0=0 +ellps=WGS84 +units=m +no_defs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projected.EqualAreaDescriptor(tt.lat, tt.lon))
		})
	}
}

func TestEqualAreaDescriptor_Deterministic(t *testing.T) {
	a := projected.EqualAreaDescriptor(43.123456789, -111.987654321)
	b := projected.EqualAreaDescriptor(43.123456789, -111.987654321)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "lat_0=43.123456789")
}

func TestEqualAreaDescriptor_NonFinite(t *testing.T) {
	// Rendered as-is; the engine rejects it when the transform is built.
	assert.Contains(t, projected.EqualAreaDescriptor(math.NaN(), 0), "lat_0=NaN")
}
