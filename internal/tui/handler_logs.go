package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleLogsKey(s *logsScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.logEntries)
	switch {
	case key.Matches(msg, m.keys.Up):
		s.follow = false
		s.list.up(n)
	case key.Matches(msg, m.keys.Down):
		s.list.down(n)
	case key.Matches(msg, m.keys.PageUp):
		s.follow = false
		s.list.pageUp(n)
	case key.Matches(msg, m.keys.PageDown):
		s.list.pageDown(n)
	case key.Matches(msg, m.keys.Home):
		s.follow = false
		s.list.top(n)
	case key.Matches(msg, m.keys.End):
		s.follow = true
		s.list.bottom(n)

	case key.Matches(msg, m.keys.Follow):
		s.follow = !s.follow
		if s.follow {
			s.list.bottom(n)
		}
	}
	return m, nil
}
