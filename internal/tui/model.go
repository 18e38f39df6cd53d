package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/logging"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// cluster is the client capability the UI consumes. *kafka.Client satisfies
// it through the adapter in program.go; tests substitute fakes.
type cluster interface {
	ListTopics(ctx context.Context) ([]kafka.TopicInfo, error)
	DescribeTopic(ctx context.Context, name string) (*kafka.TopicDetail, error)
	CreateTopic(ctx context.Context, spec kafka.TopicSpec) error
	DeleteTopic(ctx context.Context, name string) error
	PurgeTopic(ctx context.Context, name string, beforeOffset int64) error
	AlterConfig(ctx context.Context, topic string, changes map[string]string) error
	AddPartitions(ctx context.Context, topic string, total int) error
	Produce(ctx context.Context, rec kafka.OutgoingRecord) (kafka.ProduceResult, error)
	ConsumeStream(ctx context.Context, topic string, start kafka.StartOffset, id string) (recordStream, error)
	ListGroups(ctx context.Context) ([]kafka.GroupInfo, error)
	DescribeGroup(ctx context.Context, id string) (*kafka.GroupDetail, error)
	ListBrokers(ctx context.Context) (kafka.ClusterInfo, error)
	Close()
}

// recordStream is the cancellable handle a consume operation returns.
type recordStream interface {
	ID() string
	Topic() string
	Records() <-chan kafka.Record
	Err() error
	Stop()
}

// profileStore is the storage collaborator boundary.
type profileStore interface {
	Load() ([]storage.Profile, error)
	Save(profile storage.Profile) error
	Delete(name string) error
}

// connectFunc dials a cluster; swapped out in tests.
type connectFunc func(ctx context.Context, cfg kafka.Config) (cluster, error)

// statusKind styles the status bar message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// maxLogEntries caps the in-memory log buffer backing the Logs screen.
const maxLogEntries = 500

// model is the entire UI state. It is owned by the bubbletea program loop;
// background work communicates exclusively through messages.
type model struct {
	// Navigation stack; the last element is the focused screen.
	stack []screenState

	// Active modal overlay, nil when none. Input goes to the modal first.
	modal modal

	// Collaborators.
	client  cluster
	connect connectFunc
	store   profileStore

	// Profile the client was built from; empty until connected.
	activeProfile storage.Profile

	// Live consume handles keyed by stream id. Only the Update loop touches
	// this map.
	streams map[string]recordStream

	// Log entries drained from the logging channel, capped.
	logCh      <-chan logging.Entry
	logEntries []logging.Entry

	// Status bar.
	statusMsg         string
	statusMsgKind     statusKind
	statusClearCancel chan struct{}

	width, height int
	keys          KeyMap
	help          help.Model
	showHelp      bool
	spinner       spinner.Model
	filterInput   textinput.Model
	quitting      bool
	err           error
}

// InitialModel builds the starting state: a Welcome screen about to load the
// saved profiles.
func InitialModel(store profileStore, connect connectFunc, logCh <-chan logging.Entry) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	fi := textinput.New()
	fi.Prompt = "/"
	fi.CharLimit = 64

	return model{
		stack:       []screenState{newWelcomeScreen()},
		connect:     connect,
		store:       store,
		streams:     make(map[string]recordStream),
		logCh:       logCh,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		filterInput: fi,
	}
}

// Init kicks off profile loading, log draining and the spinner.
func (m model) Init() tea.Cmd {
	welcome, _ := m.top().(*welcomeScreen)
	cmds := []tea.Cmd{m.spinner.Tick}
	if welcome != nil {
		welcome.loading = true
		welcome.loadID = newCorrelationID()
		cmds = append(cmds, loadProfilesCmd(m.store, welcome.loadID))
	}
	if m.logCh != nil {
		cmds = append(cmds, waitForLogCmd(m.logCh))
	}
	return tea.Batch(cmds...)
}

// appendLog adds one entry to the capped log buffer.
func (m *model) appendLog(entry logging.Entry) {
	m.logEntries = append(m.logEntries, entry)
	if len(m.logEntries) > maxLogEntries {
		m.logEntries = m.logEntries[len(m.logEntries)-maxLogEntries:]
	}
}

// stopAllStreams cancels every live consume handle. Used on quit.
func (m *model) stopAllStreams() {
	for id, s := range m.streams {
		s.Stop()
		delete(m.streams, id)
	}
}
