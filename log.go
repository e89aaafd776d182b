package projected

import (
	"github.com/rs/zerolog"

	"github.com/pspoerri/projected/internal/coord"
)

// SetLogger directs the transform engine's debug events to l. Conversions
// log nothing until a logger is set.
func SetLogger(l zerolog.Logger) {
	coord.SetLogger(l)
}
