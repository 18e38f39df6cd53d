package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfUpdateCommandShape(t *testing.T) {
	c := newSelfUpdateCmd()

	assert.Equal(t, "self-update", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.RunE)
	assert.Equal(t, "shkmv/kafka-tui", githubRepoSlug)
}

func TestSelfUpdateRefusesUnreleasedBuilds(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	// "dev" is the default version baked into local builds; an unset version
	// means the binary was not produced by a release either. Neither has a
	// release to compare against.
	for _, version := range []string{"dev", ""} {
		rootCmd.Version = version
		err := runSelfUpdate(nil, nil)
		require.Error(t, err, "version %q", version)
		assert.Contains(t, err.Error(), "cannot self-update a development version")
	}
}

func TestSelfUpdateHelp(t *testing.T) {
	c := newSelfUpdateCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs([]string{"--help"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "self-update")
	assert.Contains(t, out.String(), "Checks for the latest release")
}
