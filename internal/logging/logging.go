// Package logging builds the zap logger used across quizdeck.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizdeck/internal/config"
)

// Stderr is the log file name that selects standard error.
const Stderr = "-"

// New returns a production logger when cfg selects the production
// environment and a development logger otherwise. Output goes to
// cfg.Log.File because the TUI owns the terminal.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Production() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	out := cfg.Log.File
	if out == "" || out == Stderr {
		out = "stderr"
	} else if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	return zc.Build()
}
