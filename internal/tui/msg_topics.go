package tui

import "github.com/shkmv/kafka-tui/internal/kafka"

// topicsLoadedMsg carries a topic list fetch result.
type topicsLoadedMsg struct {
	id     string
	topics []kafka.TopicInfo
	err    error
}

// topicDetailLoadedMsg carries one topic's partitions and config.
type topicDetailLoadedMsg struct {
	id     string
	topic  string
	detail *kafka.TopicDetail
	err    error
}

// topicCreatedMsg reports a create-topic outcome.
type topicCreatedMsg struct {
	id   string
	name string
	err  error
}

// topicDeletedMsg reports a delete-topic outcome.
type topicDeletedMsg struct {
	id   string
	name string
	err  error
}

// topicPurgedMsg reports a purge (delete-records) outcome.
type topicPurgedMsg struct {
	id   string
	name string
	err  error
}

// configAlteredMsg reports a topic config change outcome.
type configAlteredMsg struct {
	id    string
	topic string
	err   error
}

// partitionsAddedMsg reports a partition count increase outcome.
type partitionsAddedMsg struct {
	id    string
	topic string
	total int
	err   error
}
