package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkmv/kafka-tui/internal/kafka"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	profiles, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	p := NewProfile("local", []string{"localhost:9092"})
	p.Auth = AuthScram256
	p.Username = "admin"
	p.Password = "secret"
	p.TLS = true
	require.NoError(t, s.Save(p))

	profiles, err := s.Load()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "local", profiles[0].Name)
	assert.Equal(t, []string{"localhost:9092"}, profiles[0].Brokers)
	assert.Equal(t, AuthScram256, profiles[0].Auth)
	assert.True(t, profiles[0].TLS)
	assert.NotEmpty(t, profiles[0].ID)
}

func TestSaveReplacesByName(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(NewProfile("prod", []string{"broker-1:9092"})))

	updated := NewProfile("prod", []string{"broker-1:9092", "broker-2:9092"})
	require.NoError(t, s.Save(updated))

	profiles, err := s.Load()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, profiles[0].Brokers)
}

func TestLoadOrdersByName(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(NewProfile("staging", []string{"s:9092"})))
	require.NoError(t, s.Save(NewProfile("local", []string{"l:9092"})))
	require.NoError(t, s.Save(NewProfile("prod", []string{"p:9092"})))

	profiles, err := s.Load()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "local", profiles[0].Name)
	assert.Equal(t, "prod", profiles[1].Name)
	assert.Equal(t, "staging", profiles[2].Name)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(NewProfile("local", []string{"l:9092"})))
	require.NoError(t, s.Save(NewProfile("prod", []string{"p:9092"})))

	require.NoError(t, s.Delete("local"))

	profiles, err := s.Load()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "prod", profiles[0].Name)

	// Deleting again is a no-op.
	require.NoError(t, s.Delete("local"))
}

func TestClientConfigMapping(t *testing.T) {
	p := NewProfile("local", []string{"localhost:9092"})
	p.Auth = AuthScram512
	p.Username = "u"
	p.Password = "p"

	cfg := p.ClientConfig()
	assert.Equal(t, kafka.AuthSASLSCRAM512, cfg.Auth)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "u", cfg.Username)

	p.Auth = AuthNone
	assert.Equal(t, kafka.AuthNone, p.ClientConfig().Auth)
}
