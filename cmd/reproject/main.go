// Command reproject reads a GeoJSON geometry in longitude/latitude and
// writes it in another coordinate reference system.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	"github.com/pspoerri/projected"
	"github.com/pspoerri/projected/dynamic"
	"github.com/pspoerri/projected/internal/logger"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	To      string `short:"t" long:"to"      description:"Target system; unprojected goes through planar and back" choice:"planar" choice:"equal-area" choice:"unprojected" default:"planar"`
	Anchor  string `short:"a" long:"anchor"  description:"Equal-area centre as lon,lat (default: centroid of the input)"`
	Version bool   `short:"V" long:"version" description:"Print version and exit"`

	Args struct {
		Input string `positional-arg-name:"input.geojson" description:"GeoJSON geometry, - or empty for stdin"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("reproject %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	opts.Logger.Setup()
	projected.SetLogger(log.Logger)

	in := io.Reader(os.Stdin)
	if opts.Args.Input != "" && opts.Args.Input != "-" {
		f, err := os.Open(opts.Args.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("Opening input")
		}
		defer f.Close()
		in = f
	}

	if err := run(opts, in, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("to", opts.To).Msg("Reprojecting")
	}
}

// result is what every dynamic conversion returns, whatever its tag.
type result interface {
	Value() orb.Geometry
	Definition() string
	Shape() projected.ShapeKind
}

func run(opts Options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return errors.Wrap(err, "decoding GeoJSON geometry")
	}
	src := dynamic.New(g.Geometry())

	var res result
	switch opts.To {
	case "planar", "":
		res, err = dynamic.ToPlanar(src)
	case "unprojected":
		var q dynamic.Geometry[projected.Planar]
		if q, err = dynamic.ToPlanar(src); err == nil {
			res, err = dynamic.ToUnprojected(q)
		}
	case "equal-area":
		var reference projected.Centroider = src
		if opts.Anchor != "" {
			anchor, perr := parseAnchor(opts.Anchor)
			if perr != nil {
				return perr
			}
			reference = projected.NewPoint(anchor)
		}
		res, err = dynamic.ToEqualAreaAt(src, reference)
	default:
		return errors.Newf("unknown target system %q", opts.To)
	}
	if err != nil {
		return err
	}

	log.Debug().
		Stringer("shape", res.Shape()).
		Str("definition", res.Definition()).
		Msg("Reprojected")

	b, err := geojson.NewGeometry(res.Value()).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding GeoJSON geometry")
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// parseAnchor reads "lon,lat" in degrees.
func parseAnchor(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Newf("anchor %q: want lon,lat", s)
	}
	var p orb.Point
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Point{}, errors.Wrapf(err, "anchor %q", s)
		}
		p[i] = v
	}
	return p, nil
}
