// Package logging routes structured log entries either to a channel the TUI
// drains into its Logs screen, or to a plain slog handler when no TUI is
// running.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes Level satisfy fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Entry is one structured log line as the TUI receives it.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Subsystem string
	Message   string
	Err       error
}

const tuiChannelBuffer = 2048

// emit runs on whatever goroutine calls a log function, including tea.Cmd
// goroutines that may still be in flight during shutdown, so all access to
// the sink state goes through mu.
var (
	mu     sync.Mutex
	logger *slog.Logger
	tuiCh  chan Entry
	filter Level
)

// InitForTUI sets up the channel the TUI listens on. Entries below the
// filter level are dropped before they reach the channel.
func InitForTUI(level Level) <-chan Entry {
	mu.Lock()
	defer mu.Unlock()
	filter = level
	tuiCh = make(chan Entry, tuiChannelBuffer)
	return tuiCh
}

// InitForCLI logs directly to the given writer via slog.
func InitForCLI(level Level, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	filter = level
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.slogLevel()})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func emit(level Level, subsystem string, err error, format string, args ...any) {
	mu.Lock()
	if level < filter {
		mu.Unlock()
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if tuiCh != nil {
		entry := Entry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Drop instead of blocking the caller when the UI falls behind.
		select {
		case tuiCh <- entry:
		default:
		}
		mu.Unlock()
		return
	}
	l := logger
	mu.Unlock()

	if l == nil {
		fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", time.Now().Format(time.RFC3339), level, subsystem, msg)
		return
	}
	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.LogAttrs(context.Background(), level.slogLevel(), msg, attrs...)
}

// Debug logs a debug message for a subsystem.
func Debug(subsystem, format string, args ...any) {
	emit(LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message for a subsystem.
func Info(subsystem, format string, args ...any) {
	emit(LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning for a subsystem.
func Warn(subsystem, format string, args ...any) {
	emit(LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error for a subsystem.
func Error(subsystem string, err error, format string, args ...any) {
	emit(LevelError, subsystem, err, format, args...)
}

// Close detaches and closes the TUI channel on shutdown. Log calls still in
// flight from background goroutines fall through to stderr afterwards.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if tuiCh != nil {
		close(tuiCh)
		tuiCh = nil
	}
}
