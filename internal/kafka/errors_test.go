package kafka

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kerr"
)

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, classify(nil))
}

func TestClassifyPassesThroughTypedErrors(t *testing.T) {
	orig := newError(ErrNotFound, "topic %q does not exist", "orders")
	got := classify(fmt.Errorf("wrapped: %w", orig))
	assert.Same(t, orig, got)
}

func TestClassifyKafkaErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"topic auth", kerr.TopicAuthorizationFailed, ErrAuthorization},
		{"group auth", kerr.GroupAuthorizationFailed, ErrAuthorization},
		{"cluster auth", kerr.ClusterAuthorizationFailed, ErrAuthorization},
		{"sasl auth", kerr.SaslAuthenticationFailed, ErrAuthorization},
		{"unknown topic", kerr.UnknownTopicOrPartition, ErrNotFound},
		{"unknown group", kerr.GroupIDNotFound, ErrNotFound},
		{"request timeout", kerr.RequestTimedOut, ErrTimeout},
		{"other broker error", kerr.InvalidTopicException, ErrProtocol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			assert.Equal(t, tc.want, got.Kind)
			assert.NotEmpty(t, got.Detail)
		})
	}
}

func TestClassifyContextDeadline(t *testing.T) {
	got := classify(context.DeadlineExceeded)
	assert.Equal(t, ErrTimeout, got.Kind)
}

func TestClassifyUnknownErrorIsConnection(t *testing.T) {
	got := classify(fmt.Errorf("dial tcp 10.0.0.1:9092: connection refused"))
	assert.Equal(t, ErrConnection, got.Kind)
}

func TestErrorString(t *testing.T) {
	err := newError(ErrAuthorization, "no access to topic %q", "orders")
	assert.Equal(t, `authorization error: no access to topic "orders"`, err.Error())
}
