// Package logging builds the zerolog logger shared by the server and CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w at the given level. Format "console"
// selects the human-readable writer; anything else writes JSON lines with
// timestamps and caller info. Unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).Level(lvl).With().
			Timestamp().
			Str("service", "nbh-site").
			Logger()
	}

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Caller().
		Str("service", "nbh-site").
		Logger()
}

// Init builds a logger with New and installs it as the global logger.
func Init(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := New(level, format, os.Stderr)
	log.Logger = l
	return l
}
