package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the logs directory.
const FileName = "retireplan.log"

// Logger appends timestamped lines to .retireplan/logs/retireplan.log so the
// alt-screen TUI never writes over its own output. The same lines are kept in
// a bounded in-memory buffer for the log panel.
type Logger struct {
	*zap.Logger
	file   *os.File
	path   string
	recent *ring
}

// New creates (or reuses) the log file in logDir at the given level.
func New(logDir, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	recent := newRing(RecentCapacity)
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(f), lvl),
		zapcore.NewCore(enc.Clone(), recent, lvl),
	)
	return &Logger{Logger: zap.New(core), file: f, path: path, recent: recent}, nil
}

// Recent returns up to n of the latest lines written by this Logger, oldest
// first, and how many lines it has written in total.
func (l *Logger) Recent(n int) ([]string, int) {
	if l == nil || l.recent == nil {
		return nil, 0
	}
	return l.recent.last(n)
}

// Path returns the file backing the logger.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close flushes and releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = l.Sync()
	return l.file.Close()
}
