package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a leveled logger writing to out. Unknown levels fall back to info.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
