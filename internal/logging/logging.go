// Package logging holds the process-wide structured logger.
//
// L discards everything until Init is called, so library code can log
// unconditionally and stay silent in tests and in quiet runs. Workers never
// log inside a timed region; only phase-level events and per-operation
// failures are reported.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It's initialized to discard all output
// by default. Call Init() from main() before any log calls.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	Output  io.Writer  // Destination. Default: os.Stderr
}

// Init configures logging.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	L = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level}))
}
