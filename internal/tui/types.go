package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// screenKind tags the variants of screenState.
type screenKind int

const (
	screenWelcome screenKind = iota
	screenTopics
	screenTopicDetails
	screenMessages
	screenGroups
	screenGroupDetails
	screenBrokers
	screenLogs
)

// String makes screenKind satisfy the fmt.Stringer interface.
func (k screenKind) String() string {
	switch k {
	case screenWelcome:
		return "Welcome"
	case screenTopics:
		return "Topics"
	case screenTopicDetails:
		return "Topic Details"
	case screenMessages:
		return "Messages"
	case screenGroups:
		return "Consumer Groups"
	case screenGroupDetails:
		return "Group Details"
	case screenBrokers:
		return "Brokers"
	case screenLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// screenState is one entry of the navigation stack. Reducers select behavior
// by the concrete type; kind exists for logging and the header line.
type screenState interface {
	kind() screenKind
}

// screenError is the structured error a screen displays. Kind matches the
// facade taxonomy plus the two local kinds (validation, storage).
type screenError struct {
	Kind   string
	Detail string
}

func (e *screenError) String() string {
	return e.Kind + ": " + e.Detail
}

func errFromClient(err error) *screenError {
	var typed *kafka.Error
	if errors.As(err, &typed) {
		return &screenError{Kind: typed.Kind.String(), Detail: typed.Detail}
	}
	return &screenError{Kind: "connection error", Detail: err.Error()}
}

func errValidation(detail string) *screenError {
	return &screenError{Kind: "validation error", Detail: detail}
}

func errStorage(err error) *screenError {
	return &screenError{Kind: "storage error", Detail: err.Error()}
}

// listState is the cursor/filter/scroll bookkeeping shared by every list
// screen. The selection index refers to the filtered view; -1 means no
// selectable rows.
type listState struct {
	selected  int
	offset    int
	filter    string
	filtering bool
}

// pageStep is how many rows PageUp/PageDown move the cursor.
const pageStep = 10

// clamp restores the selection invariant against a view of n rows:
// 0 <= selected < n, or -1 when n == 0.
func (l *listState) clamp(n int) {
	if n <= 0 {
		l.selected = -1
		l.offset = 0
		return
	}
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= n {
		l.selected = n - 1
	}
	if l.offset > l.selected {
		l.offset = l.selected
	}
}

func (l *listState) move(delta, n int) {
	if n <= 0 {
		l.selected = -1
		return
	}
	l.selected += delta
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= n {
		l.selected = n - 1
	}
}

func (l *listState) up(n int)       { l.move(-1, n) }
func (l *listState) down(n int)     { l.move(1, n) }
func (l *listState) pageUp(n int)   { l.move(-pageStep, n) }
func (l *listState) pageDown(n int) { l.move(pageStep, n) }

func (l *listState) top(n int) {
	if n <= 0 {
		l.selected = -1
		return
	}
	l.selected = 0
}

func (l *listState) bottom(n int) {
	if n <= 0 {
		l.selected = -1
		return
	}
	l.selected = n - 1
}

// ensureVisible adjusts the scroll offset so the selection stays inside a
// window of height rows.
func (l *listState) ensureVisible(height int) {
	if height <= 0 || l.selected < 0 {
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+height {
		l.offset = l.selected - height + 1
	}
}

// matchesFilter is the view-level predicate: case-insensitive substring
// match against a canonical identifier.
func matchesFilter(id, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(id), strings.ToLower(filter))
}

// --- Welcome ---

type welcomeScreen struct {
	list        listState
	profiles    []storage.Profile
	loading     bool
	lastErr     *screenError
	loadID      string
	connectID   string
	saveID      string
	deleteID    string
	connecting  string // profile name currently being connected to
}

func newWelcomeScreen() *welcomeScreen {
	return &welcomeScreen{list: listState{selected: -1}}
}

func (*welcomeScreen) kind() screenKind { return screenWelcome }

func (s *welcomeScreen) visible() []storage.Profile {
	out := make([]storage.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if matchesFilter(p.Name, s.list.filter) {
			out = append(out, p)
		}
	}
	return out
}

func (s *welcomeScreen) selectedProfile() (storage.Profile, bool) {
	view := s.visible()
	if s.list.selected < 0 || s.list.selected >= len(view) {
		return storage.Profile{}, false
	}
	return view[s.list.selected], true
}

// --- Topics ---

type topicSortField int

const (
	sortByName topicSortField = iota
	sortByPartitions
	sortByReplication
)

func (f topicSortField) String() string {
	switch f {
	case sortByPartitions:
		return "partitions"
	case sortByReplication:
		return "replication"
	default:
		return "name"
	}
}

type topicsScreen struct {
	list      listState
	topics    []kafka.TopicInfo
	loading   bool
	lastErr   *screenError
	fetchID   string
	mutateID  string
	sortField topicSortField
	sortAsc   bool
}

func newTopicsScreen() *topicsScreen {
	return &topicsScreen{sortAsc: true, list: listState{selected: -1}}
}

func (*topicsScreen) kind() screenKind { return screenTopics }

func (s *topicsScreen) visible() []kafka.TopicInfo {
	out := make([]kafka.TopicInfo, 0, len(s.topics))
	for _, t := range s.topics {
		if matchesFilter(t.Name, s.list.filter) {
			out = append(out, t)
		}
	}
	sortTopicView(out, s.sortField, s.sortAsc)
	return out
}

func (s *topicsScreen) selectedTopic() (kafka.TopicInfo, bool) {
	view := s.visible()
	if s.list.selected < 0 || s.list.selected >= len(view) {
		return kafka.TopicInfo{}, false
	}
	return view[s.list.selected], true
}

// --- Topic details ---

type detailTab int

const (
	tabPartitions detailTab = iota
	tabConfig
)

type topicDetailsScreen struct {
	topic    string
	tab      detailTab
	detail   *kafka.TopicDetail
	list     listState
	loading  bool
	lastErr  *screenError
	fetchID  string
	mutateID string
}

func newTopicDetailsScreen(topic string) *topicDetailsScreen {
	return &topicDetailsScreen{topic: topic, list: listState{selected: -1}}
}

func (*topicDetailsScreen) kind() screenKind { return screenTopicDetails }

func (s *topicDetailsScreen) rowCount() int {
	if s.detail == nil {
		return 0
	}
	if s.tab == tabConfig {
		return len(s.detail.Configs)
	}
	return len(s.detail.Partitions)
}

// --- Messages ---

// maxBufferedRecords caps the message buffer so an active stream cannot grow
// without bound.
const maxBufferedRecords = 5000

type messagesScreen struct {
	topic          string
	list           listState
	records        []kafka.Record
	start          kafka.StartOffset
	consuming      bool
	streamID       string
	detailExpanded bool
	detailView     viewport.Model
	lastErr        *screenError
	produceID      string
}

func newMessagesScreen(topic string) *messagesScreen {
	return &messagesScreen{
		topic:      topic,
		list:       listState{selected: -1},
		detailView: viewport.New(0, 0),
	}
}

func (*messagesScreen) kind() screenKind { return screenMessages }

func (s *messagesScreen) visible() []kafka.Record {
	out := make([]kafka.Record, 0, len(s.records))
	for _, r := range s.records {
		if matchesFilter(r.Key, s.list.filter) {
			out = append(out, r)
		}
	}
	return out
}

func (s *messagesScreen) selectedRecord() (kafka.Record, bool) {
	view := s.visible()
	if s.list.selected < 0 || s.list.selected >= len(view) {
		return kafka.Record{}, false
	}
	return view[s.list.selected], true
}

// --- Consumer groups ---

type groupsScreen struct {
	list    listState
	groups  []kafka.GroupInfo
	loading bool
	lastErr *screenError
	fetchID string
}

func newGroupsScreen() *groupsScreen {
	return &groupsScreen{list: listState{selected: -1}}
}

func (*groupsScreen) kind() screenKind { return screenGroups }

func (s *groupsScreen) visible() []kafka.GroupInfo {
	out := make([]kafka.GroupInfo, 0, len(s.groups))
	for _, g := range s.groups {
		if matchesFilter(g.GroupID, s.list.filter) {
			out = append(out, g)
		}
	}
	return out
}

func (s *groupsScreen) selectedGroup() (kafka.GroupInfo, bool) {
	view := s.visible()
	if s.list.selected < 0 || s.list.selected >= len(view) {
		return kafka.GroupInfo{}, false
	}
	return view[s.list.selected], true
}

type groupTab int

const (
	tabOffsets groupTab = iota
	tabMembers
)

type groupDetailScreen struct {
	groupID string
	tab     groupTab
	detail  *kafka.GroupDetail
	list    listState
	loading bool
	lastErr *screenError
	fetchID string
}

func newGroupDetailScreen(id string) *groupDetailScreen {
	return &groupDetailScreen{groupID: id, list: listState{selected: -1}}
}

func (*groupDetailScreen) kind() screenKind { return screenGroupDetails }

func (s *groupDetailScreen) rowCount() int {
	if s.detail == nil {
		return 0
	}
	if s.tab == tabMembers {
		return len(s.detail.Members)
	}
	return len(s.detail.Offsets)
}

// --- Brokers ---

type brokersScreen struct {
	list    listState
	info    kafka.ClusterInfo
	loading bool
	lastErr *screenError
	fetchID string
}

func newBrokersScreen() *brokersScreen {
	return &brokersScreen{list: listState{selected: -1}}
}

func (*brokersScreen) kind() screenKind { return screenBrokers }

// --- Logs ---

type logsScreen struct {
	list   listState
	follow bool
}

func newLogsScreen() *logsScreen {
	return &logsScreen{list: listState{selected: -1}, follow: true}
}

func (*logsScreen) kind() screenKind { return screenLogs }
