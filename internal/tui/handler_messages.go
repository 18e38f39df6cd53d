package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleMessagesKey(s *messagesScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.detailExpanded {
		switch {
		case key.Matches(msg, m.keys.Enter):
			s.detailExpanded = false
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if rec, ok := s.selectedRecord(); ok {
				if err := clipboard.WriteAll(rec.Value); err != nil {
					return m, m.setStatus(statusError, "clipboard unavailable")
				}
				return m, m.setStatus(statusInfo, "copied message value")
			}
			return m, nil
		}
		var cmd tea.Cmd
		s.detailView, cmd = s.detailView.Update(msg)
		return m, cmd
	}

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

	case key.Matches(msg, m.keys.Enter):
		if rec, ok := s.selectedRecord(); ok {
			s.detailExpanded = true
			s.detailView.SetContent(recordDetailContent(rec))
			s.detailView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if rec, ok := s.selectedRecord(); ok {
			if err := clipboard.WriteAll(rec.Value); err != nil {
				return m, m.setStatus(statusError, "clipboard unavailable")
			}
			return m, m.setStatus(statusInfo, "copied message value")
		}
		return m, nil

	case key.Matches(msg, m.keys.Produce):
		m.modal = newProduceForm(s.topic)
		return m, nil

	case key.Matches(msg, m.keys.Offset):
		m.modal = newStartOffsetForm(s.start)
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if s.consuming {
			m.stopStream(s)
			return m, m.setStatus(statusInfo, "consuming paused")
		}
		return m.restartStream(s)
	}
	return m, nil
}

// restartStream replaces the screen's stream, resuming from the configured
// start position. Records already on screen are kept.
func (m model) restartStream(s *messagesScreen) (tea.Model, tea.Cmd) {
	m.stopStream(s)
	s.consuming = true
	s.lastErr = nil
	s.streamID = newCorrelationID()
	return m, startStreamCmd(m.client, s.topic, s.start, s.streamID)
}

func (m model) handleStreamStarted(msg streamStartedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenMessages).(*messagesScreen)
	if !ok || msg.id != s.streamID {
		// The screen is gone or restarted with a newer stream; close the
		// orphan so its consumer does not leak.
		if msg.stream != nil {
			msg.stream.Stop()
		}
		return m, nil
	}
	if msg.err != nil {
		s.consuming = false
		s.streamID = ""
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "consuming %s failed", msg.topic)
		return m, m.setStatus(statusError, "could not consume %s: %s", msg.topic, s.lastErr.Detail)
	}
	m.streams[msg.stream.ID()] = msg.stream
	logging.Debug("tui", "stream %s started for topic %s", msg.stream.ID(), msg.topic)
	return m, waitForRecordsCmd(msg.stream)
}

func (m model) handleRecordsBatch(msg recordsBatchMsg) (tea.Model, tea.Cmd) {
	stream, live := m.streams[msg.streamID]

	s, ok := m.findScreen(screenMessages).(*messagesScreen)
	if !ok || s.streamID != msg.streamID {
		// Late batch from a superseded or abandoned stream.
		if live {
			stream.Stop()
			delete(m.streams, msg.streamID)
		}
		return m, nil
	}

	if len(msg.records) > 0 {
		atBottom := s.list.selected == len(s.visible())-1 || s.list.selected < 0
		s.records = append(s.records, msg.records...)
		if over := len(s.records) - maxBufferedRecords; over > 0 {
			// selected/offset index the filtered view, so shift them by how
			// many of the dropped records were actually visible.
			shift := over
			if s.list.filter != "" {
				shift = 0
				for _, r := range s.records[:over] {
					if matchesFilter(r.Key, s.list.filter) {
						shift++
					}
				}
			}
			s.records = s.records[over:]
			s.list.selected -= shift
			s.list.offset -= shift
		}
		s.list.clamp(len(s.visible()))
		if atBottom {
			s.list.bottom(len(s.visible()))
		}
	}

	if msg.closed {
		delete(m.streams, msg.streamID)
		s.streamID = ""
		s.consuming = false
		if msg.err != nil {
			s.lastErr = errFromClient(msg.err)
			logging.Error("kafka", msg.err, "stream for %s ended", s.topic)
			return m, m.setStatus(statusError, "stream ended: %s", s.lastErr.Detail)
		}
		return m, nil
	}
	if !live {
		return m, nil
	}
	return m, waitForRecordsCmd(stream)
}

func (m model) handleProduced(msg producedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenMessages).(*messagesScreen)
	if !ok || msg.id != s.produceID {
		return m, nil
	}
	s.produceID = ""
	if msg.err != nil {
		err := errFromClient(msg.err)
		logging.Error("kafka", msg.err, "producing to %s failed", msg.topic)
		return m, m.setStatus(statusError, "produce failed: %s", err.Detail)
	}
	return m, m.setStatus(statusSuccess, "produced to %s partition %d at offset %d",
		msg.topic, msg.result.Partition, msg.result.Offset)
}

// applyStartOffset is invoked by the start-offset form; it restarts the
// stream from the chosen position and clears the buffer.
func (m *model) applyStartOffset(start kafka.StartOffset) tea.Cmd {
	s, ok := m.findScreen(screenMessages).(*messagesScreen)
	if !ok {
		return nil
	}
	s.start = start
	s.records = nil
	s.list.clamp(0)
	m.stopStream(s)
	s.consuming = true
	s.lastErr = nil
	s.streamID = newCorrelationID()
	return startStreamCmd(m.client, s.topic, start, s.streamID)
}
