package kafka

import (
	"context"
	"sort"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// requestTimeout bounds every discrete admin/metadata call. Streaming
// consumption is bounded by its cancellation handle instead.
const requestTimeout = 15 * time.Second

// Client is the cluster facade the UI talks to. All methods resolve with a
// typed *Error on failure so callers can surface the kind without parsing
// strings.
type Client struct {
	cfg Config
	cl  *kgo.Client
	adm *kadm.Client
}

// Connect dials the cluster and verifies it is reachable before returning.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	cl, err := kgo.NewClient(cfg.clientOpts()...)
	if err != nil {
		return nil, classify(err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	if err := cl.Ping(ctx); err != nil {
		cl.Close()
		return nil, classify(err)
	}

	return &Client{cfg: cfg, cl: cl, adm: kadm.NewClient(cl)}, nil
}

// Close releases the underlying connections. Safe to call once.
func (c *Client) Close() {
	c.cl.Close()
}

func (c *Client) reqCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}

// ListTopics returns every topic in the cluster sorted by name.
func (c *Client) ListTopics(ctx context.Context) ([]TopicInfo, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	details, err := c.adm.ListTopics(ctx)
	if err != nil {
		return nil, classify(err)
	}

	topics := make([]TopicInfo, 0, len(details))
	for _, d := range details.Sorted() {
		if d.Err != nil {
			continue
		}
		info := TopicInfo{
			Name:       d.Topic,
			Partitions: int32(len(d.Partitions)),
			IsInternal: d.IsInternal,
		}
		for _, p := range d.Partitions {
			info.ReplicationFactor = int16(len(p.Replicas))
			break
		}
		topics = append(topics, info)
	}
	return topics, nil
}

// DescribeTopic returns the partition layout, per-partition offsets and
// configuration of one topic.
func (c *Client) DescribeTopic(ctx context.Context, name string) (*TopicDetail, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	details, err := c.adm.ListTopics(ctx, name)
	if err != nil {
		return nil, classify(err)
	}
	td, ok := details[name]
	if !ok || td.Err != nil {
		if td.Err != nil {
			return nil, classify(td.Err)
		}
		return nil, newError(ErrNotFound, "topic %q does not exist", name)
	}

	starts, err := c.adm.ListStartOffsets(ctx, name)
	if err != nil {
		return nil, classify(err)
	}
	ends, err := c.adm.ListEndOffsets(ctx, name)
	if err != nil {
		return nil, classify(err)
	}

	detail := &TopicDetail{Name: name}
	for _, p := range td.Partitions.Sorted() {
		pi := PartitionInfo{
			ID:             p.Partition,
			Leader:         p.Leader,
			Replicas:       p.Replicas,
			InSyncReplicas: p.ISR,
		}
		if lo, ok := starts.Lookup(name, p.Partition); ok {
			pi.StartOffset = lo.Offset
		}
		if lo, ok := ends.Lookup(name, p.Partition); ok {
			pi.EndOffset = lo.Offset
		}
		detail.Partitions = append(detail.Partitions, pi)
	}

	configs, err := c.adm.DescribeTopicConfigs(ctx, name)
	if err != nil {
		return nil, classify(err)
	}
	for _, rc := range configs {
		if rc.Err != nil {
			continue
		}
		for _, entry := range rc.Configs {
			detail.Configs = append(detail.Configs, ConfigEntry{
				Key:       entry.Key,
				Value:     entry.MaybeValue(),
				Sensitive: entry.Sensitive,
			})
		}
	}
	sort.Slice(detail.Configs, func(i, j int) bool {
		return detail.Configs[i].Key < detail.Configs[j].Key
	})

	return detail, nil
}

// CreateTopic creates a topic from the given spec.
func (c *Client) CreateTopic(ctx context.Context, spec TopicSpec) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	resp, err := c.adm.CreateTopic(ctx, spec.Partitions, spec.ReplicationFactor, spec.Configs, spec.Name)
	if err != nil {
		return classify(err)
	}
	if resp.Err != nil {
		return classify(resp.Err)
	}
	return nil
}

// DeleteTopic removes a topic.
func (c *Client) DeleteTopic(ctx context.Context, name string) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	resp, err := c.adm.DeleteTopic(ctx, name)
	if err != nil {
		return classify(err)
	}
	if resp.Err != nil {
		return classify(resp.Err)
	}
	return nil
}

// PurgeTopic deletes records below beforeOffset on every partition of the
// topic. A beforeOffset of -1 truncates each partition to its end offset.
func (c *Client) PurgeTopic(ctx context.Context, name string, beforeOffset int64) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	details, err := c.adm.ListTopics(ctx, name)
	if err != nil {
		return classify(err)
	}
	td, ok := details[name]
	if !ok {
		return newError(ErrNotFound, "topic %q does not exist", name)
	}

	offsets := make(kadm.Offsets)
	for _, p := range td.Partitions {
		offsets.Add(kadm.Offset{Topic: name, Partition: p.Partition, At: beforeOffset})
	}

	resps, err := c.adm.DeleteRecords(ctx, offsets)
	if err != nil {
		return classify(err)
	}
	for _, byPartition := range resps {
		for _, r := range byPartition {
			if r.Err != nil {
				return classify(r.Err)
			}
		}
	}
	return nil
}

// AlterConfig applies the given key/value changes to a topic's configuration.
func (c *Client) AlterConfig(ctx context.Context, topic string, changes map[string]string) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	alterations := make([]kadm.AlterConfig, 0, len(changes))
	for key, value := range changes {
		v := value
		alterations = append(alterations, kadm.AlterConfig{
			Op:    kadm.SetConfig,
			Name:  key,
			Value: &v,
		})
	}

	resps, err := c.adm.AlterTopicConfigs(ctx, alterations, topic)
	if err != nil {
		return classify(err)
	}
	for _, r := range resps {
		if r.Err != nil {
			return classify(r.Err)
		}
	}
	return nil
}

// AddPartitions grows the topic to the given total partition count.
func (c *Client) AddPartitions(ctx context.Context, topic string, total int) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	resps, err := c.adm.UpdatePartitions(ctx, total, topic)
	if err != nil {
		return classify(err)
	}
	for _, r := range resps {
		if r.Err != nil {
			return classify(r.Err)
		}
	}
	return nil
}

// Produce sends one record and reports the partition and offset it landed on.
func (c *Client) Produce(ctx context.Context, rec OutgoingRecord) (ProduceResult, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	out := &kgo.Record{
		Topic: rec.Topic,
		Value: []byte(rec.Value),
	}
	if rec.Key != "" {
		out.Key = []byte(rec.Key)
	}
	for k, v := range rec.Headers {
		out.Headers = append(out.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}

	produced, err := c.cl.ProduceSync(ctx, out).First()
	if err != nil {
		return ProduceResult{}, classify(err)
	}
	return ProduceResult{Partition: produced.Partition, Offset: produced.Offset}, nil
}

// ListGroups returns every consumer group with its state and member count.
func (c *Client) ListGroups(ctx context.Context) ([]GroupInfo, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	described, err := c.adm.DescribeGroups(ctx)
	if err != nil {
		return nil, classify(err)
	}

	groups := make([]GroupInfo, 0, len(described))
	for _, g := range described {
		if g.Err != nil {
			continue
		}
		groups = append(groups, GroupInfo{
			GroupID: g.Group,
			State:   g.State,
			Members: len(g.Members),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].GroupID < groups[j].GroupID })
	return groups, nil
}

// DescribeGroup returns the members and per-partition committed offsets and
// lag of one consumer group.
func (c *Client) DescribeGroup(ctx context.Context, id string) (*GroupDetail, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	described, err := c.adm.DescribeGroups(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	g, ok := described[id]
	if !ok {
		return nil, newError(ErrNotFound, "consumer group %q does not exist", id)
	}
	if g.Err != nil {
		return nil, classify(g.Err)
	}

	detail := &GroupDetail{
		GroupID: g.Group,
		State:   g.State,
		Coordinator: BrokerInfo{
			ID:   g.Coordinator.NodeID,
			Host: g.Coordinator.Host,
			Port: g.Coordinator.Port,
		},
	}
	for _, m := range g.Members {
		member := GroupMember{
			MemberID:   m.MemberID,
			ClientID:   m.ClientID,
			ClientHost: m.ClientHost,
		}
		if assigned, ok := m.Assigned.AsConsumer(); ok {
			for _, t := range assigned.Topics {
				for _, p := range t.Partitions {
					member.Assignments = append(member.Assignments, TopicPartition{
						Topic:     t.Topic,
						Partition: p,
					})
				}
			}
		}
		detail.Members = append(detail.Members, member)
	}

	committed, err := c.adm.FetchOffsets(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	topicSet := make(map[string]struct{})
	for topic := range committed {
		topicSet[topic] = struct{}{}
	}
	topics := make([]string, 0, len(topicSet))
	for topic := range topicSet {
		topics = append(topics, topic)
	}

	if len(topics) > 0 {
		ends, err := c.adm.ListEndOffsets(ctx, topics...)
		if err != nil {
			return nil, classify(err)
		}
		for topic, byPartition := range committed {
			for partition, resp := range byPartition {
				if resp.Err != nil {
					continue
				}
				pl := PartitionLag{
					Topic:           topic,
					Partition:       partition,
					CommittedOffset: resp.At,
				}
				if end, ok := ends.Lookup(topic, partition); ok {
					pl.EndOffset = end.Offset
					if lag := end.Offset - resp.At; lag > 0 {
						pl.Lag = lag
					}
				}
				detail.Offsets = append(detail.Offsets, pl)
			}
		}
	}
	sort.Slice(detail.Offsets, func(i, j int) bool {
		a, b := detail.Offsets[i], detail.Offsets[j]
		if a.Topic != b.Topic {
			return a.Topic < b.Topic
		}
		return a.Partition < b.Partition
	})

	return detail, nil
}

// ListBrokers returns the broker list plus the cluster id and controller.
func (c *Client) ListBrokers(ctx context.Context) (ClusterInfo, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	meta, err := c.adm.BrokerMetadata(ctx)
	if err != nil {
		return ClusterInfo{}, classify(err)
	}

	info := ClusterInfo{
		ClusterID:    meta.Cluster,
		ControllerID: meta.Controller,
	}
	for _, b := range meta.Brokers {
		broker := BrokerInfo{ID: b.NodeID, Host: b.Host, Port: b.Port}
		if b.Rack != nil {
			broker.Rack = *b.Rack
		}
		info.Brokers = append(info.Brokers, broker)
	}
	sort.Slice(info.Brokers, func(i, j int) bool { return info.Brokers[i].ID < info.Brokers[j].ID })
	return info, nil
}
