// Package logging builds the zerolog loggers used by the command line tools.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/dropbox/godropbox/errors"
	"github.com/rs/zerolog"
)

const (
	FormatPlain = "plain"
	FormatText  = "text"
	FormatJSON  = "json"
)

// NewConsoleWriter wraps w according to format.  Plain (or text) output is
// human readable; JSON output is written to w unchanged.
func NewConsoleWriter(w io.Writer, format string) (io.Writer, error) {
	switch strings.ToLower(format) {
	case FormatPlain, FormatText:
		return newConsoleWriter(w), nil

	case FormatJSON:
		return w, nil

	default:
		return nil, errors.Newf("unsupported log format: %s", format)
	}
}

func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

func NewLogger(w io.Writer, format string, level string) (zerolog.Logger, error) {
	out, err := NewConsoleWriter(w, format)
	if err != nil {
		return zerolog.Nop(), err
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
