package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleTopicsKey(s *topicsScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		return m, loadTopicsCmd(m.client, s.fetchID)

	case key.Matches(msg, m.keys.Sort):
		s.sortField = (s.sortField + 1) % 3
		s.list.clamp(len(s.visible()))

	case key.Matches(msg, m.keys.SortDir):
		s.sortAsc = !s.sortAsc
		s.list.clamp(len(s.visible()))

	case key.Matches(msg, m.keys.New):
		m.modal = newCreateTopicForm()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if t, ok := s.selectedTopic(); ok {
			name := t.Name
			m.modal = newConfirmModal("Delete topic "+name+"? This cannot be undone.", func(m *model) tea.Cmd {
				s.mutateID = newCorrelationID()
				return deleteTopicCmd(m.client, name, s.mutateID)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Purge):
		if t, ok := s.selectedTopic(); ok {
			m.modal = newPurgeForm(t.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Partitions):
		if t, ok := s.selectedTopic(); ok {
			m.modal = newAddPartitionsForm(t.Name, int(t.Partitions))
		}
		return m, nil

	case key.Matches(msg, m.keys.Messages):
		if t, ok := s.selectedTopic(); ok {
			return m.openMessages(t.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if t, ok := s.selectedTopic(); ok {
			details := newTopicDetailsScreen(t.Name)
			details.loading = true
			details.fetchID = newCorrelationID()
			m.push(details)
			return m, loadTopicDetailCmd(m.client, t.Name, details.fetchID)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleTopicsLoaded(msg topicsLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopics).(*topicsScreen)
	if !ok || msg.id != s.fetchID {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "listing topics failed")
		return m, nil
	}
	s.lastErr = nil
	s.topics = msg.topics
	s.list.clamp(len(s.visible()))
	return m, nil
}

func (m model) handleTopicCreated(msg topicCreatedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopics).(*topicsScreen)
	if !ok || msg.id != s.mutateID {
		return m, nil
	}
	s.mutateID = ""
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "creating topic %s failed", msg.name)
		return m, m.setStatus(statusError, "failed to create %s: %s", msg.name, s.lastErr.Detail)
	}
	s.loading = true
	s.fetchID = newCorrelationID()
	return m, tea.Batch(
		loadTopicsCmd(m.client, s.fetchID),
		m.setStatus(statusSuccess, "topic %s created", msg.name),
	)
}

func (m model) handleTopicDeleted(msg topicDeletedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopics).(*topicsScreen)
	if !ok || msg.id != s.mutateID {
		return m, nil
	}
	s.mutateID = ""
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "deleting topic %s failed", msg.name)
		return m, m.setStatus(statusError, "failed to delete %s: %s", msg.name, s.lastErr.Detail)
	}
	s.loading = true
	s.fetchID = newCorrelationID()
	return m, tea.Batch(
		loadTopicsCmd(m.client, s.fetchID),
		m.setStatus(statusSuccess, "topic %s deleted", msg.name),
	)
}

func (m model) handleTopicPurged(msg topicPurgedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenTopics).(*topicsScreen)
	if !ok || msg.id != s.mutateID {
		return m, nil
	}
	s.mutateID = ""
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "purging topic %s failed", msg.name)
		return m, m.setStatus(statusError, "failed to purge %s: %s", msg.name, s.lastErr.Detail)
	}
	return m, m.setStatus(statusSuccess, "topic %s purged", msg.name)
}

// openMessages pushes the live message view for a topic, consuming from the
// latest offset until the user picks another start.
func (m model) openMessages(topic string) (tea.Model, tea.Cmd) {
	s := newMessagesScreen(topic)
	s.detailView.Width = m.width - 4
	s.detailView.Height = m.height - 8
	s.consuming = true
	s.streamID = newCorrelationID()
	m.push(s)
	return m, startStreamCmd(m.client, topic, s.start, s.streamID)
}
