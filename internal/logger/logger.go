// Package logger builds the application logger. The TUI owns the
// terminal, so logs go to a file in the state directory instead of
// stdout or stderr.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const logFileName = "prepdeck.log"

// New creates a JSON file logger under stateDir. Logging is best-effort:
// if the directory or file cannot be used, a no-op logger is returned so
// the app still runs.
func New(stateDir string) *zap.Logger {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(stateDir, logFileName)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
