package coord

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// parseProjString builds a Projection from a PROJ-style parameter string
// such as "+proj=laea +lat_0=52 +lon_0=10 +ellps=GRS80 +units=m".
// Only the parameters this package can honour are accepted; anything else
// is a construction failure rather than being silently ignored.
func parseProjString(def string) (Projection, error) {
	params := make(map[string]string)
	for _, tok := range strings.Fields(def) {
		if !strings.HasPrefix(tok, "+") || len(tok) == 1 {
			return nil, errors.Wrapf(ErrConstruction, "malformed parameter %q in %q", tok, def)
		}
		key, value, _ := strings.Cut(tok[1:], "=")
		if _, dup := params[key]; dup {
			return nil, errors.Wrapf(ErrConstruction, "duplicate parameter +%s in %q", key, def)
		}
		params[key] = value
	}

	proj, ok := params["proj"]
	if !ok {
		return nil, errors.Wrapf(ErrConstruction, "missing +proj in %q", def)
	}
	delete(params, "proj")

	el := WGS84
	if name, ok := params["ellps"]; ok {
		e, known := ellipsoids[name]
		if !known {
			return nil, errors.Wrapf(ErrConstruction, "unknown ellipsoid %q", name)
		}
		el = e
		delete(params, "ellps")
	}
	if datum, ok := params["datum"]; ok {
		if datum != "WGS84" {
			return nil, errors.Wrapf(ErrConstruction, "unsupported datum %q", datum)
		}
		el = WGS84
		delete(params, "datum")
	}
	if units, ok := params["units"]; ok {
		if units != "m" {
			return nil, errors.Wrapf(ErrConstruction, "unsupported units %q", units)
		}
		delete(params, "units")
	}
	// Flags without effect on the math.
	delete(params, "no_defs")
	delete(params, "type")

	switch proj {
	case "longlat", "latlong", "lonlat", "latlon":
		if len(params) > 0 {
			return nil, unexpectedParams(params, def)
		}
		return &LongLat{ID: def}, nil

	case "laea":
		p := &LAEA{ID: def, Ellipsoid: el}
		fields := []struct {
			key string
			dst *float64
		}{
			{"lat_0", &p.Lat0},
			{"lon_0", &p.Lon0},
			{"x_0", &p.X0},
			{"y_0", &p.Y0},
		}
		for _, f := range fields {
			raw, ok := params[f.key]
			if !ok {
				continue
			}
			v, err := parseFinite(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "+%s", f.key)
			}
			*f.dst = v
			delete(params, f.key)
		}
		if len(params) > 0 {
			return nil, unexpectedParams(params, def)
		}
		if p.Lat0 < -90 || p.Lat0 > 90 {
			return nil, errors.Wrapf(ErrConstruction, "+lat_0=%g beyond the poles", p.Lat0)
		}
		return p, nil

	default:
		return nil, errors.Wrapf(ErrConstruction, "unsupported projection +proj=%s", proj)
	}
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrConstruction, "malformed number %q", raw)
	}
	if !finite(v) {
		return 0, errors.Wrapf(ErrConstruction, "non-finite number %q", raw)
	}
	return v, nil
}

func unexpectedParams(params map[string]string, def string) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, "+"+k)
	}
	return errors.Wrapf(ErrConstruction, "unsupported parameters %s in %q", strings.Join(keys, " "), def)
}

// formatFloat renders v in its shortest round-trip form ("43", "-111", "52.5").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
