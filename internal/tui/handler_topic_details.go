package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleTopicDetailsKey(s *topicDetailsScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		if s.tab == tabPartitions {
			s.tab = tabConfig
		} else {
			s.tab = tabPartitions
		}
		s.list.clamp(s.rowCount())

	case key.Matches(msg, m.keys.Refresh):
		s.loading = true
		s.lastErr = nil
		s.fetchID = newCorrelationID()
		return m, loadTopicDetailCmd(m.client, s.topic, s.fetchID)

	case key.Matches(msg, m.keys.Messages):
		return m.openMessages(s.topic)

	case key.Matches(msg, m.keys.Partitions):
		if s.detail != nil {
			m.modal = newAddPartitionsForm(s.topic, len(s.detail.Partitions))
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if s.tab == tabConfig && s.detail != nil &&
			s.list.selected >= 0 && s.list.selected < len(s.detail.Configs) {
			entry := s.detail.Configs[s.list.selected]
			m.modal = newAlterConfigForm(s.topic, entry.Key, entry.Value)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if s.tab == tabConfig && s.detail != nil &&
			s.list.selected >= 0 && s.list.selected < len(s.detail.Configs) {
			entry := s.detail.Configs[s.list.selected]
			if err := clipboard.WriteAll(entry.Key + "=" + entry.Value); err != nil {
				return m, m.setStatus(statusError, "clipboard unavailable")
			}
			return m, m.setStatus(statusInfo, "copied %s", entry.Key)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleTopicDetailLoaded(msg topicDetailLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopicDetails).(*topicDetailsScreen)
	if !ok || msg.id != s.fetchID || msg.topic != s.topic {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "describing topic %s failed", msg.topic)
		return m, nil
	}
	s.lastErr = nil
	s.detail = msg.detail
	s.list.clamp(s.rowCount())
	return m, nil
}

func (m model) handleConfigAltered(msg configAlteredMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopicDetails).(*topicDetailsScreen)
	if !ok || msg.id != s.mutateID {
		return m, nil
	}
	s.mutateID = ""
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "altering config on %s failed", msg.topic)
		return m, m.setStatus(statusError, "failed to update config: %s", s.lastErr.Detail)
	}
	s.loading = true
	s.fetchID = newCorrelationID()
	return m, tea.Batch(
		loadTopicDetailCmd(m.client, s.topic, s.fetchID),
		m.setStatus(statusSuccess, "config updated on %s", msg.topic),
	)
}

func (m model) handlePartitionsAdded(msg partitionsAddedMsg) (tea.Model, tea.Cmd) {
	// Dispatched from either the topic list or the details screen; refresh
	// whichever is around.
	var cmds []tea.Cmd
	if s, ok := m.findScreen(screenTopicDetails).(*topicDetailsScreen); ok && msg.id == s.mutateID {
		s.mutateID = ""
		if msg.err == nil {
			s.loading = true
			s.fetchID = newCorrelationID()
			cmds = append(cmds, loadTopicDetailCmd(m.client, s.topic, s.fetchID))
		} else {
			s.lastErr = errFromClient(msg.err)
		}
	} else if s, ok := m.findScreen(screenTopics).(*topicsScreen); ok && msg.id == s.mutateID {
		s.mutateID = ""
		if msg.err == nil {
			s.loading = true
			s.fetchID = newCorrelationID()
			cmds = append(cmds, loadTopicsCmd(m.client, s.fetchID))
		} else {
			s.lastErr = errFromClient(msg.err)
		}
	} else {
		return m, nil
	}

	if msg.err != nil {
		logging.Error("kafka", msg.err, "adding partitions to %s failed", msg.topic)
		cmds = append(cmds, m.setStatus(statusError, "failed to grow %s", msg.topic))
	} else {
		cmds = append(cmds, m.setStatus(statusSuccess, "%s now has %d partitions", msg.topic, msg.total))
	}
	return m, tea.Batch(cmds...)
}
