package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newIdleStream builds a Stream the way ConsumeStream does, minus the
// network: the goroutine just waits for cancellation.
func newIdleStream(id string) *Stream {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		id:      id,
		topic:   "orders",
		records: make(chan Record, 1),
		cancel:  cancel,
	}
	go func() {
		<-ctx.Done()
		close(s.records)
	}()
	return s
}

func TestStreamStopClosesRecords(t *testing.T) {
	s := newIdleStream("s1")
	s.Stop()

	_, open := <-s.records
	assert.False(t, open, "records channel should close after Stop")
	assert.NoError(t, s.Err())
}

func TestStreamStopIsIdempotent(t *testing.T) {
	s := newIdleStream("s1")

	// Double stop must not panic or error.
	s.Stop()
	s.Stop()
	assert.NoError(t, s.Err())
}

func TestStreamNoRecordsAfterStop(t *testing.T) {
	s := newIdleStream("s1")
	s.Stop()

	// Drain everything; the channel must end without new deliveries.
	count := 0
	for range s.records {
		count++
	}
	assert.Zero(t, count)
}

func TestStreamIdentity(t *testing.T) {
	s := newIdleStream("stream-42")
	defer s.Stop()
	assert.Equal(t, "stream-42", s.ID())
	assert.Equal(t, "orders", s.Topic())
}
