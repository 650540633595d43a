package pubshell

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. pretty switches to the
// human-readable console writer.
func NewLogger(level string, pretty bool, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	}

	out := w
	if pretty {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		out = console
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("component", "pubshell").Logger(), nil
}
