// Package logger is the desk's leveled logger. Output goes to a file by
// default so the terminal UI is never interleaved with log lines.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls how much is written.
type Level int

const (
	// LevelOff writes nothing.
	LevelOff Level = iota
	// LevelNormal writes info, warn and error lines.
	LevelNormal
	// LevelVerbose also writes debug lines.
	LevelVerbose
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// LevelFromFlags picks a level from the -verbose and -quiet flags.
// Quiet wins when both are set.
func LevelFromFlags(verbose, quiet bool) Level {
	switch {
	case quiet:
		return LevelOff
	case verbose:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Logger is safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	out   io.Writer
	dbg   *log.Logger
	inf   *log.Logger
	wrn   *log.Logger
	errs  *log.Logger
}

// New creates a logger writing to out, or to os.Stderr when out is nil.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	flags := log.Ldate | log.Ltime

	return &Logger{
		level: level,
		out:   out,
		dbg:   log.New(out, "[DBG] ", flags),
		inf:   log.New(out, "[INF] ", flags),
		wrn:   log.New(out, "[WRN] ", flags),
		errs:  log.New(out, "[ERR] ", flags),
	}
}

// Writer returns the underlying writer, for redirecting the standard
// library logger used by third-party packages.
func (l *Logger) Writer() io.Writer { return l.out }

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) emit(min Level, dst *log.Logger, format string, args []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= min {
		dst.Output(3, fmt.Sprintf(format, args...))
	}
}

// Debug logs only in verbose mode.
func (l *Logger) Debug(format string, args ...any) { l.emit(LevelVerbose, l.dbg, format, args) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.emit(LevelNormal, l.inf, format, args) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.emit(LevelNormal, l.wrn, format, args) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.emit(LevelNormal, l.errs, format, args) }
