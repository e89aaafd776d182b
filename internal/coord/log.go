package coord

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger replaces the logger the engine writes its debug events to.
// The engine is silent until one is set.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the engine logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}
