package kafka

import (
	"context"
	"errors"
	"sync"

	"github.com/twmb/franz-go/pkg/kgo"
)

// streamBuffer bounds how many records a stream holds before the poll loop
// blocks waiting for the UI to drain.
const streamBuffer = 256

// Stream is one active consume operation. Records arrive on Records until
// Stop is called or the underlying fetch fails; after the channel closes,
// Err reports the terminal error, if any.
type Stream struct {
	id      string
	topic   string
	records chan Record

	cancel   context.CancelFunc
	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

// ID is the stream identifier handed out at creation.
func (s *Stream) ID() string { return s.id }

// Topic is the topic this stream consumes.
func (s *Stream) Topic() string { return s.topic }

// Records is the channel consumed records arrive on. Closed when the stream
// ends for any reason.
func (s *Stream) Records() <-chan Record { return s.records }

// Err reports why the stream ended. Nil after a clean Stop.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stop cancels the stream. Idempotent: stopping an already-stopped or
// already-finished stream is a no-op.
func (s *Stream) Stop() {
	s.stopOnce.Do(s.cancel)
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// ConsumeStream starts consuming a topic from the given position and returns
// a cancellable handle identified by id. The stream owns a dedicated
// consumer connection; stopping it does not disturb the admin client.
func (c *Client) ConsumeStream(ctx context.Context, topic string, start StartOffset, id string) (*Stream, error) {
	var reset kgo.Offset
	switch start.Mode {
	case OffsetEarliest:
		reset = kgo.NewOffset().AtStart()
	case OffsetSpecific:
		reset = kgo.NewOffset().At(start.At)
	default:
		reset = kgo.NewOffset().AtEnd()
	}

	consumer, err := kgo.NewClient(c.cfg.clientOpts(
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(reset),
	)...)
	if err != nil {
		return nil, classify(err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		id:      id,
		topic:   topic,
		records: make(chan Record, streamBuffer),
		cancel:  cancel,
	}

	go func() {
		defer close(s.records)
		defer consumer.Close()

		for {
			fetches := consumer.PollFetches(streamCtx)
			if fetches.IsClientClosed() || streamCtx.Err() != nil {
				return
			}
			for _, fetchErr := range fetches.Errors() {
				if errors.Is(fetchErr.Err, context.Canceled) {
					return
				}
				s.setErr(classify(fetchErr.Err))
				return
			}
			fetches.EachRecord(func(rec *kgo.Record) {
				out := Record{
					Partition: rec.Partition,
					Offset:    rec.Offset,
					Timestamp: rec.Timestamp,
					Key:       string(rec.Key),
					Value:     string(rec.Value),
				}
				if len(rec.Headers) > 0 {
					out.Headers = make(map[string]string, len(rec.Headers))
					for _, h := range rec.Headers {
						out.Headers[h.Key] = string(h.Value)
					}
				}
				select {
				case s.records <- out:
				case <-streamCtx.Done():
				}
			})
		}
	}()

	return s, nil
}
