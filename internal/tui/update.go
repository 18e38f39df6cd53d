package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

// Update is the single reducer. Every state transition, including results of
// background work, flows through here on one goroutine.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if s, ok := m.top().(*messagesScreen); ok {
			s.detailView.Width = msg.Width - 4
			s.detailView.Height = msg.Height - 8
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logEntryMsg:
		m.appendLog(msg.entry)
		if s, ok := m.top().(*logsScreen); ok && s.follow {
			s.list.bottom(len(m.logEntries))
		}
		return m, waitForLogCmd(m.logCh)

	case logChannelClosedMsg:
		return m, nil

	case statusExpiredMsg:
		m.statusMsg = ""
		return m, nil

	case profilesLoadedMsg:
		return m.handleProfilesLoaded(msg)
	case profileSavedMsg:
		return m.handleProfileSaved(msg)
	case profileDeletedMsg:
		return m.handleProfileDeleted(msg)
	case connectedMsg:
		return m.handleConnected(msg)

	case topicsLoadedMsg:
		return m.handleTopicsLoaded(msg)
	case topicCreatedMsg:
		return m.handleTopicCreated(msg)
	case topicDeletedMsg:
		return m.handleTopicDeleted(msg)
	case topicPurgedMsg:
		return m.handleTopicPurged(msg)
	case topicDetailLoadedMsg:
		return m.handleTopicDetailLoaded(msg)
	case configAlteredMsg:
		return m.handleConfigAltered(msg)
	case partitionsAddedMsg:
		return m.handlePartitionsAdded(msg)

	case streamStartedMsg:
		return m.handleStreamStarted(msg)
	case recordsBatchMsg:
		return m.handleRecordsBatch(msg)
	case producedMsg:
		return m.handleProduced(msg)

	case groupsLoadedMsg:
		return m.handleGroupsLoaded(msg)
	case groupDetailLoadedMsg:
		return m.handleGroupDetailLoaded(msg)
	case brokersLoadedMsg:
		return m.handleBrokersLoaded(msg)
	}

	return m, nil
}

// handleKey routes keyboard input: modal first, then filter entry, then
// global bindings, then the focused screen.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, no matter what has focus.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		cmd := m.modal.update(&m, msg)
		return m, cmd
	}

	if l := m.topList(); l != nil && l.filtering {
		return m.handleFilterKey(l, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m.goBack()

	case key.Matches(msg, m.keys.Filter):
		if l := m.topList(); l != nil {
			l.filtering = true
			m.filterInput.SetValue(l.filter)
			m.filterInput.Focus()
			return m, nil
		}

	case key.Matches(msg, m.keys.Logs):
		if _, ok := m.top().(*logsScreen); !ok {
			m.push(newLogsScreen())
		}
		return m, nil

	case key.Matches(msg, m.keys.Topics):
		return m.switchSection(screenTopics)
	case key.Matches(msg, m.keys.Groups):
		return m.switchSection(screenGroups)
	case key.Matches(msg, m.keys.Brokers):
		return m.switchSection(screenBrokers)
	}

	switch s := m.top().(type) {
	case *welcomeScreen:
		return m.handleWelcomeKey(s, msg)
	case *topicsScreen:
		return m.handleTopicsKey(s, msg)
	case *topicDetailsScreen:
		return m.handleTopicDetailsKey(s, msg)
	case *messagesScreen:
		return m.handleMessagesKey(s, msg)
	case *groupsScreen:
		return m.handleGroupsKey(s, msg)
	case *groupDetailScreen:
		return m.handleGroupDetailKey(s, msg)
	case *brokersScreen:
		return m.handleBrokersKey(s, msg)
	case *logsScreen:
		return m.handleLogsKey(s, msg)
	}
	return m, nil
}

// topList exposes the focused screen's list bookkeeping; nil when the screen
// has no filterable list.
func (m *model) topList() *listState {
	switch s := m.top().(type) {
	case *welcomeScreen:
		return &s.list
	case *topicsScreen:
		return &s.list
	case *topicDetailsScreen:
		return &s.list
	case *messagesScreen:
		return &s.list
	case *groupsScreen:
		return &s.list
	case *groupDetailScreen:
		return &s.list
	case *brokersScreen:
		return &s.list
	case *logsScreen:
		return &s.list
	}
	return nil
}

// handleFilterKey edits the live filter. Enter commits, esc reverts to an
// empty filter, everything else goes to the text input.
func (m model) handleFilterKey(l *listState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		l.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		l.filtering = false
		l.filter = ""
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.clampTop()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	l.filter = m.filterInput.Value()
	m.clampTop()
	return m, cmd
}

// clampTop re-establishes the focused screen's selection invariant after its
// visible row count may have changed.
func (m *model) clampTop() {
	switch s := m.top().(type) {
	case *welcomeScreen:
		s.list.clamp(len(s.visible()))
	case *topicsScreen:
		s.list.clamp(len(s.visible()))
	case *topicDetailsScreen:
		s.list.clamp(s.rowCount())
	case *messagesScreen:
		s.list.clamp(len(s.visible()))
	case *groupsScreen:
		s.list.clamp(len(s.visible()))
	case *groupDetailScreen:
		s.list.clamp(s.rowCount())
	case *brokersScreen:
		s.list.clamp(len(s.info.Brokers))
	case *logsScreen:
		s.list.clamp(len(m.logEntries))
	}
}

// goBack pops the focused screen. Leaving the message view cancels its
// stream; arriving back at Welcome disconnects; the base screen ignores esc.
func (m model) goBack() (tea.Model, tea.Cmd) {
	if s, ok := m.top().(*messagesScreen); ok {
		if s.detailExpanded {
			s.detailExpanded = false
			return m, nil
		}
		m.stopStream(s)
	}
	if !m.pop() {
		return m, nil
	}
	if _, ok := m.top().(*welcomeScreen); ok && m.client != nil {
		m.stopAllStreams()
		m.client.Close()
		m.client = nil
		logging.Info("kafka", "disconnected from %s", m.activeProfile.Name)
		return m, m.setStatus(statusInfo, "disconnected from %s", m.activeProfile.Name)
	}
	return m, nil
}

// stopStream cancels the screen's live consume handle, if any.
func (m *model) stopStream(s *messagesScreen) {
	if s.streamID == "" {
		return
	}
	if stream, ok := m.streams[s.streamID]; ok {
		stream.Stop()
		delete(m.streams, s.streamID)
		logging.Debug("tui", "stopped stream %s for topic %s", s.streamID, s.topic)
	}
	s.streamID = ""
	s.consuming = false
}

// isSectionScreen reports whether k is one of the sibling top-level cluster
// screens reachable by digit shortcut.
func isSectionScreen(k screenKind) bool {
	return k == screenTopics || k == screenGroups || k == screenBrokers
}

// switchSection jumps between the top-level cluster screens. Requires a live
// connection; pops back to an existing instance instead of stacking
// duplicates, and replaces a sibling section instead of piling siblings up.
func (m model) switchSection(k screenKind) (tea.Model, tea.Cmd) {
	if m.client == nil {
		return m, nil
	}
	if m.top().kind() == k {
		return m, nil
	}
	if s, ok := m.top().(*messagesScreen); ok {
		m.stopStream(s)
	}
	// Unwind to an existing instance of the target if the stack has one.
	// Every screen discarded on the way down releases its stream.
	if m.findScreen(k) != nil {
		for m.top().kind() != k {
			if s, ok := m.top().(*messagesScreen); ok {
				m.stopStream(s)
			}
			if !m.pop() {
				break
			}
		}
		return m, nil
	}

	var next screenState
	var cmd tea.Cmd
	switch k {
	case screenTopics:
		s := newTopicsScreen()
		s.loading = true
		s.fetchID = newCorrelationID()
		next, cmd = s, loadTopicsCmd(m.client, s.fetchID)
	case screenGroups:
		s := newGroupsScreen()
		s.loading = true
		s.fetchID = newCorrelationID()
		next, cmd = s, loadGroupsCmd(m.client, s.fetchID)
	case screenBrokers:
		s := newBrokersScreen()
		s.loading = true
		s.fetchID = newCorrelationID()
		next, cmd = s, loadBrokersCmd(m.client, s.fetchID)
	default:
		return m, nil
	}
	if isSectionScreen(m.top().kind()) {
		m.replaceTop(next)
	} else {
		m.push(next)
	}
	return m, cmd
}

// quit tears everything down and stops the program.
func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stopAllStreams()
	if m.client != nil {
		m.client.Close()
	}
	logging.Info("tui", "shutting down")
	return m, tea.Quit
}
