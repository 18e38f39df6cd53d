package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkmv/kafka-tui/internal/storage"
)

func someProfiles() []storage.Profile {
	return []storage.Profile{
		{ID: "1", Name: "local", Brokers: []string{"localhost:9092"}},
		{ID: "2", Name: "prod", Brokers: []string{"b1:9092", "b2:9092"}, Auth: storage.AuthScram512},
	}
}

func TestProfilesLoadedPopulatesWelcome(t *testing.T) {
	m := newTestModel(nil, &fakeStore{profiles: someProfiles()})
	s := m.top().(*welcomeScreen)
	s.loading = true
	s.loadID = "load"

	m, _ = update(m, profilesLoadedMsg{id: "load", profiles: someProfiles()})
	assert.False(t, s.loading)
	assert.Len(t, s.profiles, 2)
	assert.Equal(t, 0, s.list.selected)
}

func TestStaleProfilesLoadIsDiscarded(t *testing.T) {
	m := newTestModel(nil, nil)
	s := m.top().(*welcomeScreen)
	s.loading = true
	s.loadID = "fresh"

	m, _ = update(m, profilesLoadedMsg{id: "stale", profiles: someProfiles()})
	assert.True(t, s.loading)
	assert.Empty(t, s.profiles)
	_ = m
}

func TestEnterDispatchesConnect(t *testing.T) {
	m := newTestModel(nil, &fakeStore{})
	s := m.top().(*welcomeScreen)
	s.profiles = someProfiles()
	s.list.clamp(len(s.visible()))

	next, cmd := m.handleWelcomeKey(s, keyEnter())
	m = next.(model)

	require.NotNil(t, cmd)
	assert.Equal(t, "local", s.connecting)
	assert.NotEmpty(t, s.connectID)

	// A second enter while a dial is in flight is ignored.
	_, cmd = m.handleWelcomeKey(s, keyEnter())
	assert.Nil(t, cmd)
}

func TestProfileDeletedTriggersReload(t *testing.T) {
	store := &fakeStore{profiles: someProfiles()}
	m := newTestModel(nil, store)
	s := m.top().(*welcomeScreen)
	s.deleteID = "del"

	m, cmd := update(m, profileDeletedMsg{id: "del", name: "local"})
	require.NotNil(t, cmd)
	assert.True(t, s.loading)
	assert.NotEmpty(t, s.loadID)
	assert.Equal(t, statusSuccess, m.statusMsgKind)
}

func TestProfileSavedTriggersReload(t *testing.T) {
	m := newTestModel(nil, &fakeStore{})
	s := m.top().(*welcomeScreen)
	s.saveID = "save"

	m, cmd := update(m, profileSavedMsg{id: "save", profile: storage.Profile{Name: "staging"}})
	require.NotNil(t, cmd)
	assert.True(t, s.loading)
	assert.Equal(t, statusSuccess, m.statusMsgKind)
}

func TestBackgroundProfileSaveIsSilent(t *testing.T) {
	m := newTestModel(nil, &fakeStore{})
	s := m.top().(*welcomeScreen)

	m, cmd := update(m, profileSavedMsg{id: "last-used-update", profile: storage.Profile{Name: "local"}})
	assert.Nil(t, cmd)
	assert.False(t, s.loading)
	assert.Empty(t, m.statusMsg)
}
