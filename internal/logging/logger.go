// Package logging provides categorized file-based logging for vitrine.
// The TUI owns stdout, so everything goes to .vitrine/logs/vitrine.log;
// when logging is not initialized every logger is a silent no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem's logger.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config, CLI
	CategoryUI      Category = "ui"      // Tea model, rendering surface
	CategoryPage    Category = "page"    // Carousel / visibility transitions
	CategoryContent Category = "content" // Content loading and live reload
)

var (
	mu      sync.RWMutex
	root    *zap.Logger
	loggers = make(map[Category]*zap.SugaredLogger)
)

// Initialize builds the file-backed zap logger under dir (the workspace
// root). debug lowers the level to Debug. Calling any Get before
// Initialize, or after a failed Initialize, yields no-op loggers.
func Initialize(dir string, debug bool) error {
	if dir == "" {
		return fmt.Errorf("workspace path required")
	}
	logsDir := filepath.Join(dir, ".vitrine", "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logsDir, "vitrine.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	loggers = make(map[Category]*zap.SugaredLogger)
	return nil
}

// Get returns the sugared logger for a category, creating it on first
// use. Safe before Initialize: returns a no-op logger.
func Get(cat Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	base := root
	if base == nil {
		base = zap.NewNop()
	}
	l := base.Named(string(cat)).Sugar()
	loggers[cat] = l
	return l
}

// Sync flushes buffered log entries. Call before exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}
