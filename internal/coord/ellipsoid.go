package coord

import "math"

// Ellipsoid is a reference ellipsoid given by its semi-major axis (metres)
// and inverse flattening.
type Ellipsoid struct {
	Name    string
	A       float64
	InvFlat float64
}

var (
	WGS84 = Ellipsoid{Name: "WGS84", A: 6_378_137, InvFlat: 298.257223563}
	GRS80 = Ellipsoid{Name: "GRS80", A: 6_378_137, InvFlat: 298.257222101}
)

// ellipsoids maps the +ellps names accepted in parameter strings.
var ellipsoids = map[string]Ellipsoid{
	"WGS84": WGS84,
	"GRS80": GRS80,
}

// E2 returns the squared first eccentricity.
func (e Ellipsoid) E2() float64 {
	f := 1 / e.InvFlat
	return f * (2 - f)
}

// E returns the first eccentricity.
func (e Ellipsoid) E() float64 {
	return math.Sqrt(e.E2())
}
