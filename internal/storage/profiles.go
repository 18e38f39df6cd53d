// Package storage persists named connection profiles as a single YAML file
// under the user configuration directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shkmv/kafka-tui/internal/kafka"
)

// Profile is one saved cluster connection. Name is the unique key.
type Profile struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Brokers   []string  `yaml:"brokers"`
	Auth      AuthKind  `yaml:"auth"`
	Username  string    `yaml:"username,omitempty"`
	Password  string    `yaml:"password,omitempty"`
	TLS       bool      `yaml:"tls,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
	LastUsed  time.Time `yaml:"last_used,omitempty"`
}

// AuthKind mirrors the client's auth kinds with stable YAML spellings.
type AuthKind string

const (
	AuthNone     AuthKind = "none"
	AuthPlain    AuthKind = "sasl_plain"
	AuthScram256 AuthKind = "sasl_scram_256"
	AuthScram512 AuthKind = "sasl_scram_512"
)

// ClientConfig translates the profile into a client configuration.
func (p Profile) ClientConfig() kafka.Config {
	cfg := kafka.Config{
		Brokers:  p.Brokers,
		Username: p.Username,
		Password: p.Password,
		TLS:      p.TLS,
	}
	switch p.Auth {
	case AuthPlain:
		cfg.Auth = kafka.AuthSASLPlain
	case AuthScram256:
		cfg.Auth = kafka.AuthSASLSCRAM256
	case AuthScram512:
		cfg.Auth = kafka.AuthSASLSCRAM512
	default:
		cfg.Auth = kafka.AuthNone
	}
	return cfg
}

// NewProfile allocates a profile with identity and creation time set.
func NewProfile(name string, brokers []string) Profile {
	return Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Brokers:   brokers,
		Auth:      AuthNone,
		CreatedAt: time.Now().UTC(),
	}
}

// Store reads and writes the profiles file.
type Store struct {
	path string
}

// NewStore places the profiles file under the user config dir, creating the
// directory if needed. Pass a non-empty dir to override the location (tests).
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		dir = filepath.Join(base, "kafka-tui")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "profiles.yaml")}, nil
}

// Load returns all saved profiles ordered by name. A missing file is an
// empty list, not an error.
func (s *Store) Load() ([]Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	var profiles []Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

// Save inserts or replaces the profile keyed by name.
func (s *Store) Save(profile Profile) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range profiles {
		if profiles[i].Name == profile.Name {
			profiles[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, profile)
	}
	return s.write(profiles)
}

// Delete removes the profile with the given name. Deleting a profile that
// does not exist is a no-op.
func (s *Store) Delete(name string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}

	kept := profiles[:0]
	for _, p := range profiles {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	return s.write(kept)
}

func (s *Store) write(profiles []Profile) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing profiles: %w", err)
	}
	return nil
}
