// Package logging builds the structured logger shared by commands.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. "warning" is
// accepted for warn; empty or unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	if strings.EqualFold(name, "warning") {
		name = zerolog.WarnLevel.String()
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// New returns a console logger writing to w at the named level.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}
