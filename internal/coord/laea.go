package coord

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// polarEps decides when the centre latitude is treated as a pole.
	polarEps = 1e-10
)

// LAEA implements the ellipsoidal Lambert Azimuthal Equal-Area projection
// (Snyder, "Map Projections: A Working Manual", pp. 187-190) centred at
// (Lat0, Lon0) with false easting X0 and false northing Y0, in metres.
type LAEA struct {
	ID        string
	Ellipsoid Ellipsoid
	Lat0      float64
	Lon0      float64
	X0        float64
	Y0        float64
}

// laeaConsts holds the values that depend only on the projection centre.
type laeaConsts struct {
	e, e2   float64
	qp      float64
	rq      float64
	sinB1   float64
	cosB1   float64
	d       float64
	polar   int // +1 north pole, -1 south pole, 0 oblique
	apa     [3]float64
	a       float64
	lon0rad float64
}

func (p *LAEA) consts() laeaConsts {
	el := p.Ellipsoid
	c := laeaConsts{
		a:       el.A,
		e:       el.E(),
		e2:      el.E2(),
		lon0rad: p.Lon0 * deg2rad,
	}
	c.qp = authalicQ(1, c.e, c.e2)
	c.rq = c.a * math.Sqrt(c.qp/2)

	e4 := c.e2 * c.e2
	e6 := e4 * c.e2
	c.apa = [3]float64{
		c.e2/3 + 31*e4/180 + 517*e6/5040,
		23*e4/360 + 251*e6/3780,
		761 * e6 / 45360,
	}

	switch {
	case math.Abs(p.Lat0-90) < polarEps:
		c.polar = 1
	case math.Abs(p.Lat0+90) < polarEps:
		c.polar = -1
	default:
		phi1 := p.Lat0 * deg2rad
		sinPhi1 := math.Sin(phi1)
		b1 := math.Asin(clampUnit(authalicQ(sinPhi1, c.e, c.e2) / c.qp))
		c.sinB1, c.cosB1 = math.Sincos(b1)
		m1 := math.Cos(phi1) / math.Sqrt(1-c.e2*sinPhi1*sinPhi1)
		c.d = c.a * m1 / (c.rq * c.cosB1)
	}
	return c
}

// FromWGS84 projects WGS84 longitude/latitude (degrees) to easting/northing.
func (p *LAEA) FromWGS84(lon, lat float64) (x, y float64, err error) {
	if err := checkLonLat(lon, lat); err != nil {
		return 0, 0, err
	}
	c := p.consts()

	q := authalicQ(math.Sin(lat*deg2rad), c.e, c.e2)
	dLon := lon*deg2rad - c.lon0rad
	sinDLon, cosDLon := math.Sincos(dLon)

	switch c.polar {
	case 1:
		if lat <= -90 {
			return 0, 0, errors.Wrap(errOutOfDomain, "antipode of the projection centre")
		}
		rho := c.a * math.Sqrt(math.Max(c.qp-q, 0))
		return p.X0 + rho*sinDLon, p.Y0 - rho*cosDLon, nil
	case -1:
		if lat >= 90 {
			return 0, 0, errors.Wrap(errOutOfDomain, "antipode of the projection centre")
		}
		rho := c.a * math.Sqrt(math.Max(c.qp+q, 0))
		return p.X0 + rho*sinDLon, p.Y0 + rho*cosDLon, nil
	}

	sinB, cosB := math.Sincos(math.Asin(clampUnit(q / c.qp)))
	denom := 1 + c.sinB1*sinB + c.cosB1*cosB*cosDLon
	if denom < 1e-12 {
		return 0, 0, errors.Wrapf(errOutOfDomain, "(%g, %g) is the antipode of the projection centre", lon, lat)
	}
	b := c.rq * math.Sqrt(2/denom)
	x = p.X0 + b*c.d*cosB*sinDLon
	y = p.Y0 + (b/c.d)*(c.cosB1*sinB-c.sinB1*cosB*cosDLon)
	return x, y, nil
}

// ToWGS84 converts easting/northing back to WGS84 longitude/latitude (degrees).
func (p *LAEA) ToWGS84(x, y float64) (lon, lat float64, err error) {
	if !finite(x) || !finite(y) {
		return 0, 0, errors.Wrapf(errOutOfDomain, "non-finite coordinate (%g, %g)", x, y)
	}
	c := p.consts()
	dx, dy := x-p.X0, y-p.Y0

	var q, dLon float64
	switch c.polar {
	case 1, -1:
		rho := math.Hypot(dx, dy)
		r := rho / c.a
		if r*r > 2*c.qp*(1+1e-12) {
			return 0, 0, errors.Wrapf(errOutOfDomain, "(%g, %g) lies outside the projection disc", x, y)
		}
		if c.polar == 1 {
			q = c.qp - r*r
			dLon = math.Atan2(dx, -dy)
		} else {
			q = r*r - c.qp
			dLon = math.Atan2(dx, dy)
		}
	default:
		xs, ys := dx/c.d, dy*c.d
		rho := math.Hypot(xs, ys)
		if rho < 1e-12 {
			return p.Lon0, p.Lat0, nil
		}
		r := rho / (2 * c.rq)
		if r > 1+1e-12 {
			return 0, 0, errors.Wrapf(errOutOfDomain, "(%g, %g) lies outside the projection disc", x, y)
		}
		ce := 2 * math.Asin(clampUnit(r))
		sinCe, cosCe := math.Sincos(ce)
		q = c.qp * (cosCe*c.sinB1 + ys*sinCe*c.cosB1/rho)
		dLon = math.Atan2(xs*sinCe, rho*c.cosB1*cosCe-ys*c.sinB1*sinCe)
	}

	beta := math.Asin(clampUnit(q / c.qp))
	phi := beta +
		c.apa[0]*math.Sin(2*beta) +
		c.apa[1]*math.Sin(4*beta) +
		c.apa[2]*math.Sin(6*beta)

	return normalizeLon((c.lon0rad + dLon) * rad2deg), phi * rad2deg, nil
}

func (p *LAEA) String() string {
	if p.ID != "" {
		return p.ID
	}
	return "+proj=laea +lat_0=" + formatFloat(p.Lat0) +
		" +lon_0=" + formatFloat(p.Lon0) +
		" +x_0=" + formatFloat(p.X0) +
		" +y_0=" + formatFloat(p.Y0) +
		" +ellps=" + p.Ellipsoid.Name + " +units=m +no_defs"
}

// authalicQ is Snyder's q (eq. 3-12) for the given sine of latitude.
func authalicQ(sinPhi, e, e2 float64) float64 {
	esin := e * sinPhi
	return (1 - e2) * (sinPhi/(1-esin*esin) - 1/(2*e)*math.Log((1-esin)/(1+esin)))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// normalizeLon wraps a longitude into [-180, 180].
func normalizeLon(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
