// Package logger implements the leveled, timestamped event sink described in
// spec.md §6: "[MM-DD-YYYY HH:MM:SS] [LEVEL] message" lines written to an
// io.Writer (standard output in production). The struct shape — a
// mutex-guarded wrapper around a single writer, with one method per severity
// — follows the teacher's internal/logger.AuditLogger; the wire format and
// the verbosity gating are goshred's own (the teacher emits JSON audit
// records to a rotating file, which this tool has no use for).
package logger

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level identifies the severity of a log event.
type Level string

const (
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelDryRun   Level = "DRY_RUN"
	LevelInternal Level = "INTERNAL"
)

const timeLayout = "01-02-2006 15:04:05"

// Logger writes leveled events to an underlying writer, filtering INFO and
// INTERNAL events according to the owning run's configuration.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	verbose  bool
	internal bool

	// now is overridable in tests; defaults to time.Now.
	now func() time.Time
}

// New returns a Logger writing to out. verbose gates INFO events, internal
// gates INTERNAL events, matching Config.Verbose and Config.Internal.
func New(out io.Writer, verbose, internal bool) *Logger {
	return &Logger{out: out, verbose: verbose, internal: internal, now: time.Now}
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := l.now().Format(timeLayout)
	fmt.Fprintf(l.out, "[%s] [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}

// Info emits an INFO event, but only when verbose logging is enabled.
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(LevelInfo, format, args...)
}

// Warning always emits a WARNING event.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.write(LevelWarning, format, args...)
}

// Error always emits an ERROR event.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

// DryRun always emits a DRY_RUN event (only ever called when Config.DryRun
// is set, so there is no separate gate here).
func (l *Logger) DryRun(format string, args ...interface{}) {
	l.write(LevelDryRun, format, args...)
}

// Internal emits an INTERNAL event, but only when diagnostic mode is
// enabled.
func (l *Logger) Internal(format string, args ...interface{}) {
	if !l.internal {
		return
	}
	l.write(LevelInternal, format, args...)
}
