package projected

import "strconv"

// EqualAreaDescriptor returns the parameter string of a Lambert Azimuthal
// Equal-Area projection on the WGS84 ellipsoid centred at (lat, lon), with
// no false easting or northing and metre units.
//
// Numbers are written in their shortest exact form, so (43, -111) yields
// "+proj=laea +lat_0=43 +lon_0=-111 +x_0=0 +y_0=0 +ellps=WGS84 +units=m +no_defs".
func EqualAreaDescriptor(lat, lon float64) string {
	return "+proj=laea" +
		" +lat_0=" + strconv.FormatFloat(lat, 'f', -1, 64) +
		" +lon_0=" + strconv.FormatFloat(lon, 'f', -1, 64) +
		" +x_0=0 +y_0=0 +ellps=WGS84 +units=m +no_defs"
}
