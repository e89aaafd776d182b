package projected

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/projected/internal/coord"
)

var (
	// ErrTransformConstruction matches failures to resolve a pair of CRS
	// identifiers into a transform.
	ErrTransformConstruction = coord.ErrConstruction

	// ErrTransformApplication matches failures of a resolved transform on
	// a specific coordinate, such as a point outside the projection domain.
	ErrTransformApplication = coord.ErrApplication

	// ErrUnsupportedShape matches geometries outside the closed set of
	// point, polygon and multi-polygon.
	ErrUnsupportedShape = errors.New("unsupported geometry shape")

	// ErrShapeMismatch is returned when a value is recovered as a shape
	// other than the one it holds.
	ErrShapeMismatch = errors.New("geometry shape mismatch")

	// ErrEmptyGeometry is returned for the centroid of a polygon or
	// multi-polygon without coordinates.
	ErrEmptyGeometry = errors.New("empty geometry")
)
