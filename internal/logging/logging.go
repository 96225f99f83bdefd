// Package logging builds the slog loggers used across the parser
// packages: plain text on stderr, no timestamps, debug level behind an
// explicit switch.
package logging

import (
	"log/slog"
	"os"
)

// DebugEnv is the environment variable that turns on debug tracing for
// every package, equivalent to the CLI's --debug flag.
const DebugEnv = "EMPAPARSE_DEBUG"

// New returns a stderr text logger. With debug false only Info and above
// are emitted; trace output hides behind Debug.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || os.Getenv(DebugEnv) != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise for a short-lived CLI run
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
