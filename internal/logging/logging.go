// Package logging provides the shared structured logger for the engine.
//
// All packages log through a logr.Logger backed by zap. Verbosity follows
// the logr convention: higher V-levels are chattier. The named constants
// below are the levels used throughout the codebase.
package logging

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

var (
	mu sync.RWMutex

	// Log is the package-level logger. It discards everything until
	// SetLogger or Init is called.
	Log = logr.Discard()
)

// Init builds a zap-backed logr.Logger at the given verbosity and installs
// it as the package-level logger. Verbosity maps to zap levels: 0 → info,
// 1 → debug, 2+ → most verbose.
func Init(verbosity int) logr.Logger {
	logger := NewLogger(verbosity)
	SetLogger(logger)
	return logger
}

// NewLogger builds a zap-backed logr.Logger writing JSON to stderr.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zapLevel(verbosity),
	)
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger builds a development-mode logger for use in test suites.
// It logs at full verbosity with a console encoder so failures are readable.
func NewTestLogger() logr.Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	logger := zapr.NewLogger(zl)
	SetLogger(logger)
	return logger
}

// SetLogger installs the package-level logger.
func SetLogger(logger logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	Log = logger
}

// Logger returns the current package-level logger.
func Logger() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Log
}

func zapLevel(verbosity int) zapcore.LevelEnabler {
	switch {
	case verbosity <= INFO:
		return zapcore.InfoLevel
	default:
		// logr V-levels map to negative zap levels.
		return zapcore.Level(-verbosity)
	}
}
