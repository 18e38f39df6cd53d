package tui

import "github.com/shkmv/kafka-tui/internal/kafka"

// streamStartedMsg carries a new consume handle, or the error that prevented
// one.
type streamStartedMsg struct {
	id     string
	topic  string
	stream recordStream
	err    error
}

// recordsBatchMsg delivers a drained batch from a live stream. closed marks
// the stream's records channel as exhausted; err is only meaningful then.
type recordsBatchMsg struct {
	streamID string
	records  []kafka.Record
	closed   bool
	err      error
}

// producedMsg reports a single produce outcome.
type producedMsg struct {
	id     string
	topic  string
	result kafka.ProduceResult
	err    error
}
