// Package logger provides the module's zerolog-backed logger. Protocol
// packages log through Logger() so callers can swap or silence output
// globally.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// Set overrides the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences the module logger.
func Disable() {
	logger = zerolog.Nop()
}
