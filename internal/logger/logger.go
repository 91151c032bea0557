// Package logger wraps zap construction so callers can start with a no-op
// logger and initialize the real one once configuration is known.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Logger holds the application-wide zap logger.
type Logger struct {
	// Log is the underlying zap logger. It is a no-op until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("Debug", "Info", ...)
// and replaces the current one.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	l.Log = log
	return nil
}
