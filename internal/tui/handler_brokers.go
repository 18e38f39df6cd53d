package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleBrokersKey(s *brokersScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(s.info.Brokers)
	switch {
	case key.Matches(msg, m.keys.Up):
		s.list.up(n)
	case key.Matches(msg, m.keys.Down):
		s.list.down(n)
	case key.Matches(msg, m.keys.Home):
		s.list.top(n)
	case key.Matches(msg, m.keys.End):
		s.list.bottom(n)

	case key.Matches(msg, m.keys.Refresh):
		s.loading = true
		s.lastErr = nil
		s.fetchID = newCorrelationID()
		return m, loadBrokersCmd(m.client, s.fetchID)
	}
	return m, nil
}

func (m model) handleBrokersLoaded(msg brokersLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenBrokers).(*brokersScreen)
	if !ok || msg.id != s.fetchID {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "fetching cluster metadata failed")
		return m, nil
	}
	s.lastErr = nil
	s.info = msg.info
	s.list.clamp(len(s.info.Brokers))
	return m, nil
}
