package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/logging"
)

func (m model) handleWelcomeKey(s *welcomeScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		s.loadID = newCorrelationID()
		return m, loadProfilesCmd(m.store, s.loadID)

	case key.Matches(msg, m.keys.New):
		m.modal = newProfileForm(nil)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if p, ok := s.selectedProfile(); ok {
			m.modal = newProfileForm(&p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if p, ok := s.selectedProfile(); ok {
			name := p.Name
			m.modal = newConfirmModal("Delete profile "+name+"?", func(m *model) tea.Cmd {
				s.deleteID = newCorrelationID()
				return deleteProfileCmd(m.store, name, s.deleteID)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		p, ok := s.selectedProfile()
		if !ok || s.connecting != "" {
			return m, nil
		}
		s.lastErr = nil
		s.connecting = p.Name
		s.connectID = newCorrelationID()
		return m, connectCmd(m.connect, p, s.connectID)
	}
	return m, nil
}

func (m model) handleProfilesLoaded(msg profilesLoadedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenWelcome).(*welcomeScreen)
	if !ok || msg.id != s.loadID {
		return m, nil
	}
	s.loading = false
	if msg.err != nil {
		s.lastErr = errStorage(msg.err)
		return m, nil
	}
	s.profiles = msg.profiles
	s.list.clamp(len(s.visible()))
	return m, nil
}

func (m model) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenWelcome).(*welcomeScreen)
	if !ok || msg.id != s.saveID {
		// A background LastUsed update; nothing to show.
		return m, nil
	}
	s.saveID = ""
	if msg.err != nil {
		s.lastErr = errStorage(msg.err)
		return m, m.setStatus(statusError, "failed to save profile %s", msg.profile.Name)
	}
	s.loading = true
	s.loadID = newCorrelationID()
	return m, tea.Batch(
		loadProfilesCmd(m.store, s.loadID),
		m.setStatus(statusSuccess, "profile %s saved", msg.profile.Name),
	)
}

func (m model) handleProfileDeleted(msg profileDeletedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenWelcome).(*welcomeScreen)
	if !ok || msg.id != s.deleteID {
		return m, nil
	}
	s.deleteID = ""
	if msg.err != nil {
		s.lastErr = errStorage(msg.err)
		return m, m.setStatus(statusError, "failed to delete profile %s", msg.name)
	}
	s.loading = true
	s.loadID = newCorrelationID()
	return m, tea.Batch(
		loadProfilesCmd(m.store, s.loadID),
		m.setStatus(statusSuccess, "profile %s deleted", msg.name),
	)
}

func (m model) handleConnected(msg connectedMsg) (tea.Model, tea.Cmd) {
	s, ok := m.findScreen(screenWelcome).(*welcomeScreen)
	if !ok || msg.id != s.connectID {
		// A superseded dial; release the client if one came back.
		if msg.client != nil {
			msg.client.Close()
		}
		return m, nil
	}
	s.connectID = ""
	s.connecting = ""
	if msg.err != nil {
		s.lastErr = errFromClient(msg.err)
		logging.Error("kafka", msg.err, "connection to %s failed", msg.profile.Name)
		return m, m.setStatus(statusError, "could not connect to %s", msg.profile.Name)
	}

	m.client = msg.client
	m.activeProfile = msg.profile
	logging.Info("kafka", "connected to %s", msg.profile.Name)

	// Remember the connection time; result is ignored on purpose.
	p := msg.profile
	p.LastUsed = time.Now()
	persist := saveProfileCmd(m.store, p, newCorrelationID())

	topics := newTopicsScreen()
	topics.loading = true
	topics.fetchID = newCorrelationID()
	m.push(topics)
	return m, tea.Batch(
		loadTopicsCmd(m.client, topics.fetchID),
		persist,
		m.setStatus(statusSuccess, "connected to %s", msg.profile.Name),
	)
}
