// Package coord resolves CRS identifiers into projections and moves
// coordinates and orb geometries between them.
package coord

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Projection defines the interface for converting between a CRS and WGS84.
type Projection interface {
	// ToWGS84 converts CRS coordinates to WGS84 longitude/latitude (degrees).
	ToWGS84(x, y float64) (lon, lat float64, err error)

	// FromWGS84 converts WGS84 longitude/latitude (degrees) to CRS coordinates.
	FromWGS84(lon, lat float64) (x, y float64, err error)

	// String returns the identifier the projection was resolved from.
	String() string
}

// Supported EPSG codes.
const (
	EPSGLongLat    = 4326
	EPSGLAEAEurope = 3035
)

// ForEPSG returns a Projection for the given EPSG code.
// Returns nil if the EPSG code is not supported.
func ForEPSG(epsg int) Projection {
	switch epsg {
	case EPSGLongLat:
		return &LongLat{ID: "EPSG:4326"}
	case EPSGLAEAEurope:
		// ETRS89 / LAEA Europe. ETRS89 and WGS84 are treated as coincident.
		return &LAEA{
			ID:        "EPSG:3035",
			Ellipsoid: GRS80,
			Lat0:      52,
			Lon0:      10,
			X0:        4_321_000,
			Y0:        3_210_000,
		}
	default:
		return nil
	}
}

// Parse resolves an identifier into a Projection. Accepted forms are
// "EPSG:<code>" for the codes known to ForEPSG and PROJ-style parameter
// strings ("+proj=laea +lat_0=52 ...").
//
// Every failure matches ErrConstruction.
func Parse(identifier string) (Projection, error) {
	id := strings.TrimSpace(identifier)
	switch {
	case id == "":
		return nil, errors.Wrap(ErrConstruction, "empty CRS identifier")
	case strings.HasPrefix(id, "+"):
		return parseProjString(id)
	}

	authority, code, ok := strings.Cut(id, ":")
	if !ok || !strings.EqualFold(authority, "EPSG") {
		return nil, errors.Wrapf(ErrConstruction, "unrecognised CRS identifier %q", identifier)
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil, errors.Wrapf(ErrConstruction, "malformed EPSG code in %q", identifier)
	}
	p := ForEPSG(n)
	if p == nil {
		return nil, errors.Wrapf(ErrConstruction, "unsupported EPSG code %d", n)
	}
	return p, nil
}

// LongLat is the geographic system itself; coordinates pass through
// unchanged once they are known to be valid degrees.
type LongLat struct {
	ID string
}

func (l *LongLat) ToWGS84(x, y float64) (lon, lat float64, err error) {
	if err := checkLonLat(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (l *LongLat) FromWGS84(lon, lat float64) (x, y float64, err error) {
	if err := checkLonLat(lon, lat); err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}

func (l *LongLat) String() string {
	if l.ID == "" {
		return "+proj=longlat +ellps=WGS84"
	}
	return l.ID
}
