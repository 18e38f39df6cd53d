package tui

import "github.com/shkmv/kafka-tui/internal/storage"

// profilesLoadedMsg carries the result of reading the profile store.
type profilesLoadedMsg struct {
	id       string
	profiles []storage.Profile
	err      error
}

// profileSavedMsg reports a profile create/update.
type profileSavedMsg struct {
	id      string
	profile storage.Profile
	err     error
}

// profileDeletedMsg reports a profile removal.
type profileDeletedMsg struct {
	id   string
	name string
	err  error
}

// connectedMsg carries the outcome of dialing a cluster.
type connectedMsg struct {
	id      string
	client  cluster
	profile storage.Profile
	err     error
}
