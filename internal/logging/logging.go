// Package logging provides the debug logger shared by verdict packages.
//
// Logging is disabled unless debug output is enabled through configuration
// (VERDICT_DEBUG or debug: true in .verdict.yaml).
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkoosis/verdict/internal/config"
)

var (
	mu     sync.RWMutex
	logger *zerolog.Logger
)

// New returns a console logger writing to w. Without debug the logger is
// disabled.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: config.Current().NoColor}).
		Level(level).
		With().Timestamp().Str("component", "verdict").
		Logger()
}

// GetLogger returns the shared logger, building it from the resolved
// configuration on first use.
func GetLogger() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		built := New(os.Stderr, config.Current().Debug)
		logger = &built
	}
	return logger
}

// SetLogger replaces the shared logger.
func SetLogger(l *zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}
