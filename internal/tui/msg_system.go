package tui

import "github.com/shkmv/kafka-tui/internal/logging"

// logEntryMsg delivers one drained log entry to the Update loop.
type logEntryMsg struct {
	entry logging.Entry
}

// logChannelClosedMsg signals the logging channel closed on shutdown.
type logChannelClosedMsg struct{}

// statusExpiredMsg clears the status bar after its display window.
type statusExpiredMsg struct{}
