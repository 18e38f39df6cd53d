package tui

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/logging"
	"github.com/shkmv/kafka-tui/internal/storage"
)

func someTopics() []kafka.TopicInfo {
	return []kafka.TopicInfo{
		{Name: "orders", Partitions: 3, ReplicationFactor: 2},
		{Name: "payments", Partitions: 6, ReplicationFactor: 3},
		{Name: "__consumer_offsets", Partitions: 50, ReplicationFactor: 3, IsInternal: true},
	}
}

func TestStaleTopicsResultIsDiscarded(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, nil)
	s.loading = true
	s.fetchID = "fresh"

	m, _ = update(m, topicsLoadedMsg{id: "stale", topics: someTopics()})

	assert.True(t, s.loading, "stale result must not complete the load")
	assert.Empty(t, s.topics)

	m, _ = update(m, topicsLoadedMsg{id: "fresh", topics: someTopics()})
	assert.False(t, s.loading)
	assert.Len(t, s.topics, 3)
	_ = m
}

func TestLastDispatchedRefreshWins(t *testing.T) {
	fc := &fakeCluster{}
	m := newTestModel(fc, nil)
	s := pushTopics(&m, nil)

	// First refresh.
	m, _ = update(m, keyRune('r'))
	first := s.fetchID
	require.NotEmpty(t, first)

	// Second refresh supersedes the first before it completes.
	m, _ = update(m, keyRune('r'))
	second := s.fetchID
	require.NotEqual(t, first, second)

	// The first completion arrives late and is ignored.
	m, _ = update(m, topicsLoadedMsg{id: first, topics: []kafka.TopicInfo{{Name: "old"}}})
	assert.True(t, s.loading)
	assert.Empty(t, s.topics)

	m, _ = update(m, topicsLoadedMsg{id: second, topics: someTopics()})
	assert.False(t, s.loading)
	assert.Len(t, s.topics, 3)
}

func TestTopicsErrorKeepsPriorItems(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, someTopics())
	s.fetchID = "refresh"
	s.loading = true

	m, _ = update(m, topicsLoadedMsg{id: "refresh", err: assert.AnError})
	assert.Len(t, s.topics, 3, "failed refresh keeps the prior listing")
	require.NotNil(t, s.lastErr)
	_ = m
}

func TestTopicsLoadErrorIsDisplayed(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, nil)
	s.fetchID = "refresh"
	s.loading = true

	m, _ = update(m, topicsLoadedMsg{id: "refresh", err: assert.AnError})
	assert.False(t, s.loading)
	require.NotNil(t, s.lastErr)
	assert.Equal(t, "connection error", s.lastErr.Kind)
	_ = m
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, someTopics())

	s.list.filter = "ORD"
	view := s.visible()
	require.Len(t, view, 1)
	assert.Equal(t, "orders", view[0].Name)

	// Filtering twice with the same needle gives the same view.
	assert.Equal(t, view, s.visible())

	// Clearing the filter restores the full listing without a refetch.
	s.list.filter = ""
	assert.Len(t, s.visible(), 3)
}

func TestFilterChangeRestoresSelectionInvariant(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, someTopics())
	s.list.selected = 2

	s.list.filter = "payments"
	s.list.clamp(len(s.visible()))
	assert.Equal(t, 0, s.list.selected)

	s.list.filter = "no-such-topic"
	s.list.clamp(len(s.visible()))
	assert.Equal(t, -1, s.list.selected, "empty view has no selection")
	_ = m
}

func TestCreateTopicFailureLeavesListUnchanged(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, someTopics())
	s.mutateID = "create"

	m, _ = update(m, topicCreatedMsg{id: "create", name: "new-topic", err: &kafka.Error{
		Kind: kafka.ErrAuthorization, Detail: "not authorized",
	}})

	assert.Len(t, s.topics, 3, "failed create must not disturb the listing")
	require.NotNil(t, s.lastErr)
	assert.Equal(t, kafka.ErrAuthorization.String(), s.lastErr.Kind)
	assert.Equal(t, statusError, m.statusMsgKind)
}

func TestConnectedPushesTopicsScreen(t *testing.T) {
	fc := &fakeCluster{topics: someTopics()}
	store := &fakeStore{}
	m := newTestModel(nil, store)
	welcome := m.top().(*welcomeScreen)
	welcome.connectID = "dial"
	welcome.connecting = "local"

	m, cmd := update(m, connectedMsg{id: "dial", client: fc, profile: storage.Profile{Name: "local"}})

	assert.Equal(t, screenTopics, m.top().kind())
	assert.NotNil(t, m.client)
	assert.Equal(t, "local", m.activeProfile.Name)
	assert.NotNil(t, cmd)
}

func TestStaleConnectResultClosesOrphanClient(t *testing.T) {
	fc := &fakeCluster{}
	m := newTestModel(nil, nil)
	welcome := m.top().(*welcomeScreen)
	welcome.connectID = "current"

	m, _ = update(m, connectedMsg{id: "superseded", client: fc, profile: storage.Profile{Name: "old"}})

	assert.True(t, fc.closed, "orphaned client must be closed")
	assert.Nil(t, m.client)
	assert.Equal(t, screenWelcome, m.top().kind())
}

func TestConnectErrorStaysOnWelcome(t *testing.T) {
	m := newTestModel(nil, nil)
	welcome := m.top().(*welcomeScreen)
	welcome.connectID = "dial"
	welcome.connecting = "local"

	m, _ = update(m, connectedMsg{id: "dial", err: assert.AnError, profile: storage.Profile{Name: "local"}})

	assert.Equal(t, screenWelcome, m.top().kind())
	assert.Empty(t, welcome.connecting)
	require.NotNil(t, welcome.lastErr)
}

func TestQuitClosesClientAndStreams(t *testing.T) {
	fc := &fakeCluster{}
	m := newTestModel(fc, nil)
	stream := newFakeStream("s1", "orders")
	m.streams["s1"] = stream

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	assert.True(t, fc.closed)
	assert.Equal(t, 1, stream.stops)
	assert.Empty(t, m.streams)
	require.NotNil(t, cmd)
}

func TestBackFromTopicsDisconnects(t *testing.T) {
	fc := &fakeCluster{}
	m := newTestModel(fc, nil)
	m.activeProfile = storage.Profile{Name: "local"}
	pushTopics(&m, someTopics())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenWelcome, m.top().kind())
	assert.Nil(t, m.client)
	assert.True(t, fc.closed)
}

func TestSectionSwitchReusesExistingScreen(t *testing.T) {
	fc := &fakeCluster{}
	m := newTestModel(fc, nil)
	topics := pushTopics(&m, someTopics())
	groups := newGroupsScreen()
	m.push(groups)

	// "1" jumps back to the existing topics screen without stacking a new one.
	m, _ = update(m, keyRune('1'))
	assert.Same(t, topics, m.top())
	require.Len(t, m.stack, 2)
}

func TestSectionSwitchReplacesSiblingAndLoads(t *testing.T) {
	fc := &fakeCluster{groups: []kafka.GroupInfo{{GroupID: "billing", State: "Stable", Members: 2}}}
	m := newTestModel(fc, nil)
	pushTopics(&m, someTopics())

	m, cmd := update(m, keyRune('2'))
	require.NotNil(t, cmd)
	s, ok := m.top().(*groupsScreen)
	require.True(t, ok)
	assert.True(t, s.loading)
	assert.NotEmpty(t, s.fetchID)
	// Siblings swap in place instead of stacking, so esc still means Welcome.
	require.Len(t, m.stack, 2)

	m, _ = update(m, groupsLoadedMsg{id: s.fetchID, groups: fc.groups})
	assert.False(t, s.loading)
	assert.Len(t, s.groups, 1)
}

func TestSectionSwitchStopsStreamsOnUnwoundScreens(t *testing.T) {
	// Stack: Welcome, Topics, Messages (live), Logs. Jumping to Topics
	// unwinds past the message view, whose stream must not keep running.
	m, _, stream := openTestMessages(t, &fakeCluster{})
	m.push(newLogsScreen())

	m, _ = update(m, keyRune('1'))

	assert.Equal(t, screenTopics, m.top().kind())
	assert.Equal(t, 1, stream.stops, "unwound message view must release its stream")
	assert.Empty(t, m.streams)
}

func TestRevisitedScreenKeepsStaleDataUntilRefresh(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	topics := pushTopics(&m, someTopics())
	m.push(newTopicDetailsScreen("orders"))

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})

	// No fetch was started by coming back.
	assert.Same(t, topics, m.top())
	assert.False(t, topics.loading)
	assert.Len(t, topics.topics, 3)
}

func TestStatusExpiryClearsMessage(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	cmd := m.setStatus(statusSuccess, "done")
	require.NotNil(t, cmd)
	assert.Equal(t, "done", m.statusMsg)

	m2, _ := update(m, statusExpiredMsg{})
	assert.Empty(t, m2.statusMsg)
}

func TestLogEntriesAreCapped(t *testing.T) {
	m := newTestModel(nil, nil)
	for i := 0; i < maxLogEntries+25; i++ {
		m.appendLog(logging.Entry{Level: logging.LevelInfo, Subsystem: "tui", Message: strconv.Itoa(i)})
	}
	assert.Len(t, m.logEntries, maxLogEntries)
}

func TestSortCycleKeepsSelectionValid(t *testing.T) {
	m := newTestModel(&fakeCluster{}, nil)
	s := pushTopics(&m, someTopics())
	s.list.selected = 2

	m, _ = update(m, keyRune('s'))
	assert.Equal(t, sortByPartitions, s.sortField)
	assert.GreaterOrEqual(t, s.list.selected, 0)
	assert.Less(t, s.list.selected, len(s.visible()))

	m, _ = update(m, keyRune('S'))
	assert.False(t, s.sortAsc)
}
