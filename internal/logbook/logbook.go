package logbook

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrea/retireplan/internal/logging"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logbook is the session journal shown in the TUI log panel. Entries go
// through zap; Tail reads them back from the logger's in-memory buffer.
type Logbook struct {
	log    *zap.SugaredLogger
	source *logging.Logger
	path   string
}

// New wraps a logger. A nil logger yields a logbook that drops everything.
func New(logger *logging.Logger) *Logbook {
	if logger == nil {
		return &Logbook{log: zap.NewNop().Sugar()}
	}
	return &Logbook{log: logger.Sugar(), source: logger, path: logger.Path()}
}

// With returns a logbook that attaches key/value pairs to every entry.
func (l *Logbook) With(keysAndValues ...any) *Logbook {
	if l == nil {
		return nil
	}
	return &Logbook{log: l.log.With(keysAndValues...), source: l.source, path: l.path}
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes a single entry to the logbook.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	message = strings.TrimSpace(message)
	switch level {
	case LevelDebug:
		l.log.Debug(message)
	case LevelWarn:
		l.log.Warn(message)
	case LevelError:
		l.log.Error(message)
	default:
		l.log.Info(message)
	}
}

// Tail returns up to maxLines of the most recent entries written this session
// and the session's total line count.
func (l *Logbook) Tail(maxLines int) ([]string, int) {
	if l == nil || l.source == nil || maxLines <= 0 {
		return nil, 0
	}
	return l.source.Recent(maxLines)
}

// Debug appends a debug entry.
func (l *Logbook) Debug(format string, args ...any) {
	l.Append(LevelDebug, fmt.Sprintf(format, args...))
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}
