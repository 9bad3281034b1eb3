package intake

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const logFilename = "intake.log"

// NewLogger returns a file-backed debug logger in dir when INTAKE_DEBUG is
// set, and a nop logger otherwise. The form owns the terminal while it is
// running, so nothing ever logs to stderr.
func NewLogger(dir string) *zap.Logger {
	if os.Getenv("INTAKE_DEBUG") == "" {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{filepath.Join(dir, logFilename)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
