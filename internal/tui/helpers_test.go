package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// fakeStream is a recordStream whose records are fed by the test.
type fakeStream struct {
	id      string
	topic   string
	records chan kafka.Record
	err     error
	stops   int
}

func newFakeStream(id, topic string) *fakeStream {
	return &fakeStream{id: id, topic: topic, records: make(chan kafka.Record, 16)}
}

func (s *fakeStream) ID() string                   { return s.id }
func (s *fakeStream) Topic() string                { return s.topic }
func (s *fakeStream) Records() <-chan kafka.Record { return s.records }
func (s *fakeStream) Err() error                   { return s.err }

func (s *fakeStream) Stop() {
	s.stops++
	if s.stops == 1 {
		close(s.records)
	}
}

// fakeCluster serves canned answers and records calls.
type fakeCluster struct {
	topics    []kafka.TopicInfo
	topicsErr error

	detail    *kafka.TopicDetail
	detailErr error

	groups    []kafka.GroupInfo
	groupsErr error

	groupDetail    *kafka.GroupDetail
	groupDetailErr error

	info    kafka.ClusterInfo
	infoErr error

	produceResult kafka.ProduceResult
	produceErr    error

	stream    *fakeStream
	streamErr error

	createErr     error
	deleteErr     error
	purgeErr      error
	alterErr      error
	partitionsErr error

	closed bool
}

func (c *fakeCluster) ListTopics(context.Context) ([]kafka.TopicInfo, error) {
	return c.topics, c.topicsErr
}

func (c *fakeCluster) DescribeTopic(context.Context, string) (*kafka.TopicDetail, error) {
	return c.detail, c.detailErr
}

func (c *fakeCluster) CreateTopic(context.Context, kafka.TopicSpec) error { return c.createErr }
func (c *fakeCluster) DeleteTopic(context.Context, string) error         { return c.deleteErr }
func (c *fakeCluster) PurgeTopic(context.Context, string, int64) error   { return c.purgeErr }

func (c *fakeCluster) AlterConfig(context.Context, string, map[string]string) error {
	return c.alterErr
}

func (c *fakeCluster) AddPartitions(context.Context, string, int) error { return c.partitionsErr }

func (c *fakeCluster) Produce(context.Context, kafka.OutgoingRecord) (kafka.ProduceResult, error) {
	return c.produceResult, c.produceErr
}

func (c *fakeCluster) ConsumeStream(_ context.Context, topic string, _ kafka.StartOffset, id string) (recordStream, error) {
	if c.streamErr != nil {
		return nil, c.streamErr
	}
	if c.stream == nil {
		c.stream = newFakeStream(id, topic)
	}
	return c.stream, nil
}

func (c *fakeCluster) ListGroups(context.Context) ([]kafka.GroupInfo, error) {
	return c.groups, c.groupsErr
}

func (c *fakeCluster) DescribeGroup(context.Context, string) (*kafka.GroupDetail, error) {
	return c.groupDetail, c.groupDetailErr
}

func (c *fakeCluster) ListBrokers(context.Context) (kafka.ClusterInfo, error) {
	return c.info, c.infoErr
}

func (c *fakeCluster) Close() { c.closed = true }

// fakeStore is an in-memory profileStore.
type fakeStore struct {
	profiles []storage.Profile
	loadErr  error
	saved    []storage.Profile
	deleted  []string
}

func (s *fakeStore) Load() ([]storage.Profile, error) { return s.profiles, s.loadErr }

func (s *fakeStore) Save(p storage.Profile) error {
	s.saved = append(s.saved, p)
	return nil
}

func (s *fakeStore) Delete(name string) error {
	s.deleted = append(s.deleted, name)
	return nil
}

func newTestModel(client *fakeCluster, store *fakeStore) model {
	if store == nil {
		store = &fakeStore{}
	}
	connect := func(context.Context, kafka.Config) (cluster, error) { return client, nil }
	m := InitialModel(store, connect, nil)
	m.width = 120
	m.height = 40
	if client != nil {
		m.client = client
	}
	return m
}

// pushTopics puts a loaded topics screen on top.
func pushTopics(m *model, topics []kafka.TopicInfo) *topicsScreen {
	s := newTopicsScreen()
	s.topics = topics
	s.list.clamp(len(s.visible()))
	m.push(s)
	return s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func update(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}
