package cli

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"bookmock/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger returns a console logger on stderr, or a JSON logger writing to
// a size-rotated file when cfg.LogFile is set. The closer releases the file.
func newLogger(cfg config.Config, stderr io.Writer) (zerolog.Logger, io.Closer) {
	var (
		w      io.Writer = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		w, closer = lj, lj
	}
	return zerolog.New(w).Level(zerologLevel(cfg.LogLevel)).With().Timestamp().Logger(), closer
}

// zerologLevel accepts the access-log vocabulary (off|error|info|debug) as
// well as zerolog's own level names.
func zerologLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "off" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
