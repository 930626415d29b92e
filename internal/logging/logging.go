// Where: internal/logging/logging.go
// What: Process-wide zerolog setup and per-component loggers.
// Why: Keep debug output off by default and on stderr when --verbose is set.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Options configure the root logger.
type Options struct {
	Out     io.Writer
	Verbose bool
	NoColor bool
}

// Init replaces the root logger. Without Verbose every component logger is a no-op.
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	if !opts.Verbose {
		base = zerolog.Nop()
		return
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    opts.NoColor,
		TimeFormat: "15:04:05",
	}
	base = zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
