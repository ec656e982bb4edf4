package commands

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w. Verbose runs log at debug level,
// quiet runs only report warnings and above.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
