package coord

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrConstruction is returned when a pair of identifiers cannot be
	// resolved into a usable transform.
	ErrConstruction = errors.New("transform construction failed")

	// ErrApplication is returned when a resolved transform fails on a
	// specific coordinate.
	ErrApplication = errors.New("transform application failed")

	errOutOfDomain = errors.New("coordinate outside the projection domain")
)

// checkLonLat rejects non-finite values and latitudes beyond the poles.
func checkLonLat(lon, lat float64) error {
	if !finite(lon) || !finite(lat) {
		return errors.Wrapf(errOutOfDomain, "non-finite coordinate (%g, %g)", lon, lat)
	}
	if lat < -90 || lat > 90 {
		return errors.Wrapf(errOutOfDomain, "latitude %g beyond the poles", lat)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
