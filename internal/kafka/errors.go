package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/twmb/franz-go/pkg/kerr"
)

// ErrorKind classifies a failed cluster operation for display.
type ErrorKind int

const (
	ErrConnection ErrorKind = iota
	ErrAuthorization
	ErrNotFound
	ErrTimeout
	ErrProtocol
)

func (k ErrorKind) String() string {
	switch k {
	case ErrConnection:
		return "connection error"
	case ErrAuthorization:
		return "authorization error"
	case ErrNotFound:
		return "not found"
	case ErrTimeout:
		return "timeout"
	case ErrProtocol:
		return "protocol error"
	default:
		return "unknown error"
	}
}

// Error is the typed failure every facade operation resolves with.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newError(kind ErrorKind, format string, a ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// classify maps an arbitrary client error onto the facade taxonomy.
// Already-classified errors pass through unchanged.
func classify(err error) *Error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrTimeout, "%v", err)
	}

	var kafkaErr *kerr.Error
	if errors.As(err, &kafkaErr) {
		switch kafkaErr.Code {
		case kerr.TopicAuthorizationFailed.Code,
			kerr.GroupAuthorizationFailed.Code,
			kerr.ClusterAuthorizationFailed.Code,
			kerr.SaslAuthenticationFailed.Code:
			return newError(ErrAuthorization, "%s", kafkaErr.Description)
		case kerr.UnknownTopicOrPartition.Code,
			kerr.UnknownTopicID.Code,
			kerr.GroupIDNotFound.Code:
			return newError(ErrNotFound, "%s", kafkaErr.Description)
		case kerr.RequestTimedOut.Code:
			return newError(ErrTimeout, "%s", kafkaErr.Description)
		default:
			return newError(ErrProtocol, "%s", kafkaErr.Description)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return newError(ErrTimeout, "%v", netErr)
		}
		return newError(ErrConnection, "%v", netErr)
	}

	return newError(ErrConnection, "%v", err)
}
