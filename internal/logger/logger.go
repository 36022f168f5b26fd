package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to out. Console mode uses the human-readable writer, otherwise JSON lines.
func New(out io.Writer, level string, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Init replaces the global logger. Output goes to stderr so stdout stays free for reports.
func Init(level string, console bool) error {
	l, err := New(os.Stderr, level, console)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}
