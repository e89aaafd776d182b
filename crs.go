package projected

// Canonical engine identifiers of the fixed systems.
const (
	UnprojectedID = "EPSG:4326" // WGS84 longitude/latitude, degrees
	PlanarID      = "EPSG:3035" // ETRS89 / LAEA Europe, metres
)

// Unprojected tags geographic longitude/latitude coordinates in degrees.
type Unprojected struct{}

// Planar tags the fixed equal-area projected system (EPSG:3035).
type Planar struct{}

// EqualArea tags a Lambert Azimuthal Equal-Area system centred on a point
// chosen per conversion. The centre is carried by the value, not the type.
type EqualArea struct{}

func (Unprojected) String() string { return "Unprojected" }
func (Planar) String() string      { return "Planar" }
func (EqualArea) String() string   { return "EqualArea" }

// CRS is the closed set of coordinate reference system tags.
type CRS interface {
	Unprojected | Planar | EqualArea
	String() string
}

// PlanarSource is satisfied by the tags ToPlanar accepts.
type PlanarSource interface {
	Unprojected
	String() string
}

// UnprojectedSource is satisfied by the tags ToUnprojected accepts.
type UnprojectedSource interface {
	Planar
	String() string
}

// EqualAreaSource is satisfied by the tags ToEqualAreaAt accepts.
type EqualAreaSource interface {
	Unprojected | Planar
	String() string
}
