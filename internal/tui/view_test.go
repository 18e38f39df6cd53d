package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayKeepsBaseVisibleAroundBox(t *testing.T) {
	m := newTestModel(nil, nil)

	lines := make([]string, m.height)
	lines[0] = "header line"
	lines[m.height-1] = "status line"
	out := m.overlay(strings.Join(lines, "\n"), "BOX CONTENT")

	outLines := strings.Split(out, "\n")
	require.Len(t, outLines, m.height)
	assert.Equal(t, "header line", outLines[0])
	assert.Equal(t, "status line", outLines[m.height-1])
	assert.Contains(t, out, "BOX CONTENT")
}

func TestViewWithModalStillShowsScreen(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	pushTopics(&m, someTopics())
	m.modal = newCreateTopicForm()

	out := m.View()
	assert.Contains(t, out, "kafka-tui", "header must stay visible behind the modal")
	assert.Contains(t, out, "Create Topic", "the form itself must render")
}
