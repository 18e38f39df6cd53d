package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// setStatus replaces the status bar message and arms its auto-clear timer,
// cancelling the previous timer so an old expiry cannot wipe a newer message.
func (m *model) setStatus(kind statusKind, format string, args ...any) tea.Cmd {
	if m.statusClearCancel != nil {
		close(m.statusClearCancel)
	}
	m.statusClearCancel = make(chan struct{})
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusMsgKind = kind
	return statusExpireCmd(m.statusClearCancel)
}
