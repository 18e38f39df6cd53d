package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleGroupsKey(s *groupsScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(s.visible())
	switch {
	case key.Matches(msg, m.keys.Up):
		s.list.up(n)
	case key.Matches(msg, m.keys.Down):
		s.list.down(n)
	case key.Matches(msg, m.keys.PageUp):
		s.list.pageUp(n)
	case key.Matches(msg, m.keys.PageDown):
		s.list.pageDown(n)
	case key.Matches(msg, m.keys.Home):
		s.list.top(n)
	case key.Matches(msg, m.keys.End):
		s.list.bottom(n)

	case key.Matches(msg, m.keys.Refresh):
		s.loading = true
		s.lastErr = nil
		s.fetchID = newCorrelationID()
		return m, loadGroupsCmd(m.client, s.fetchID)

	case key.Matches(msg, m.keys.Enter):
		if g, ok := s.selectedGroup(); ok {
			details := newGroupDetailScreen(g.GroupID)
			details.loading = true
			details.fetchID = newCorrelationID()
			m.push(details)
			return m, loadGroupDetailCmd(m.client, g.GroupID, details.fetchID)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleGroupsLoaded(msg groupsLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenGroups).(*groupsScreen)
	if !ok || msg.id != s.fetchID {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "listing consumer groups failed")
		return m, nil
	}
	s.lastErr = nil
	s.groups = msg.groups
	s.list.clamp(len(s.visible()))
	return m, nil
}

func (m model) handleGroupDetailKey(s *groupDetailScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := s.rowCount()
	switch {
	case key.Matches(msg, m.keys.Up):
		s.list.up(n)
	case key.Matches(msg, m.keys.Down):
		s.list.down(n)
	case key.Matches(msg, m.keys.PageUp):
		s.list.pageUp(n)
	case key.Matches(msg, m.keys.PageDown):
		s.list.pageDown(n)
	case key.Matches(msg, m.keys.Home):
		s.list.top(n)
	case key.Matches(msg, m.keys.End):
		s.list.bottom(n)

	case key.Matches(msg, m.keys.Tab):
		if s.tab == tabOffsets {
			s.tab = tabMembers
		} else {
			s.tab = tabOffsets
		}
		s.list.clamp(s.rowCount())

	case key.Matches(msg, m.keys.Refresh):
		s.loading = true
		s.lastErr = nil
		s.fetchID = newCorrelationID()
		return m, loadGroupDetailCmd(m.client, s.groupID, s.fetchID)
	}
	return m, nil
}

func (m model) handleGroupDetailLoaded(msg groupDetailLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenGroupDetails).(*groupDetailScreen)
	if !ok || msg.id != s.fetchID || msg.group != s.groupID {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "describing group %s failed", msg.group)
		return m, nil
	}
	s.lastErr = nil
	s.detail = msg.detail
	s.list.clamp(s.rowCount())
	return m, nil
}
