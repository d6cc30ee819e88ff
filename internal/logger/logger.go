// Package logger provides the process-wide structured logger backed by
// Uber zap. Until Init is called, Log discards everything, so packages and
// tests can log freely without setup.
package logger

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
)

// Log is the shared sugared logger. Initialize it via Init().
var Log = zap.NewNop().Sugar()

// Init configures Log with the given level ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries. Call it before the process exits.
func Sync() error {
	// terminals reject fsync on stderr with EINVAL or ENOTTY
	if err := Log.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		return err
	}

	return nil
}
