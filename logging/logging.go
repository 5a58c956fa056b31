// Package logging provides the process-wide zerolog logger used by the
// command line and the bench runner.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// Get returns the shared logger. It writes human-readable lines to stderr
// at Debug level, or Info when NO_DEBUG is set.
func Get() zerolog.Logger {
	once.Do(func() {
		logger = New(os.Stderr)
	})

	return logger
}

// New builds a console logger writing to w with the same format and
// default level as Get.
func New(w io.Writer) zerolog.Logger {
	logLevel := zerolog.DebugLevel
	if os.Getenv("NO_DEBUG") != "" {
		logLevel = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).Level(logLevel).With().Timestamp().Caller().Logger()
}

// SetLevel parses name ("debug", "info", "warn", ...) and applies it to
// the shared logger.
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	l := Get().Level(lvl)
	logger = l

	return nil
}
