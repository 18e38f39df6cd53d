package kafka

import "time"

// TopicInfo is one row of the topic list.
type TopicInfo struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
	IsInternal        bool
}

// PartitionInfo describes a single partition of a topic.
type PartitionInfo struct {
	ID             int32
	Leader         int32
	Replicas       []int32
	InSyncReplicas []int32
	StartOffset    int64
	EndOffset      int64
}

// ConfigEntry is one topic configuration key/value pair.
type ConfigEntry struct {
	Key       string
	Value     string
	Sensitive bool
}

// TopicDetail is the full description of a topic: partition layout plus
// non-default and default configuration entries.
type TopicDetail struct {
	Name       string
	Partitions []PartitionInfo
	Configs    []ConfigEntry
}

// TopicSpec carries everything needed to create a topic.
type TopicSpec struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
	Configs           map[string]*string
}

// Record is a single consumed message.
type Record struct {
	Partition int32
	Offset    int64
	Timestamp time.Time
	Key       string
	Value     string
	Headers   map[string]string
}

// OutgoingRecord is a message to produce.
type OutgoingRecord struct {
	Topic   string
	Key     string
	Value   string
	Headers map[string]string
}

// ProduceResult reports where a produced record landed.
type ProduceResult struct {
	Partition int32
	Offset    int64
}

// StartOffset selects where a consume stream begins.
type StartOffset struct {
	// Mode is one of OffsetLatest, OffsetEarliest, OffsetSpecific.
	Mode OffsetMode
	// At is the absolute offset used when Mode is OffsetSpecific.
	At int64
}

// OffsetMode enumerates the supported stream start positions.
type OffsetMode int

const (
	OffsetLatest OffsetMode = iota
	OffsetEarliest
	OffsetSpecific
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetLatest:
		return "latest"
	case OffsetEarliest:
		return "earliest"
	case OffsetSpecific:
		return "offset"
	default:
		return "unknown"
	}
}

// GroupInfo is one row of the consumer group list.
type GroupInfo struct {
	GroupID string
	State   string
	Members int
}

// GroupMember is one member of a described consumer group.
type GroupMember struct {
	MemberID    string
	ClientID    string
	ClientHost  string
	Assignments []TopicPartition
}

// TopicPartition names a partition of a topic.
type TopicPartition struct {
	Topic     string
	Partition int32
}

// PartitionLag is the committed/end offset pair for one partition of a group.
type PartitionLag struct {
	Topic           string
	Partition       int32
	CommittedOffset int64
	EndOffset       int64
	Lag             int64
}

// GroupDetail is the full description of a consumer group.
type GroupDetail struct {
	GroupID     string
	State       string
	Coordinator BrokerInfo
	Members     []GroupMember
	Offsets     []PartitionLag
}

// BrokerInfo is one broker of the cluster.
type BrokerInfo struct {
	ID   int32
	Host string
	Port int32
	Rack string
}

// ClusterInfo is the broker list plus cluster identity.
type ClusterInfo struct {
	ClusterID    string
	ControllerID int32
	Brokers      []BrokerInfo
}
