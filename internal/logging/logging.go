// Package logging configures the process logger. The codec packages
// never log; only the CLI and the MIDI transport do.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const envLevel = "PC1600_LOG_LEVEL"

// New returns a console logger on stderr. verbose lowers the level to
// debug; the PC1600_LOG_LEVEL environment variable wins over both.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if lvl, ok := parseLevel(os.Getenv(envLevel)); ok {
		level = lvl
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	}
	return zerolog.InfoLevel, false
}
