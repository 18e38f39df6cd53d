package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// maxTopicNameLen matches the broker-side limit.
const maxTopicNameLen = 249

// validateTopicName checks broker naming rules before the request goes out,
// so typos fail locally instead of with a protocol error.
func validateTopicName(name string) error {
	if name == "" {
		return fmt.Errorf("topic name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("topic name %q is reserved", name)
	}
	if len(name) > maxTopicNameLen {
		return fmt.Errorf("topic name exceeds %d characters", maxTopicNameLen)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return fmt.Errorf("topic name may only contain letters, digits, '.', '_' and '-'")
		}
	}
	return nil
}

func parsePartitions(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("partitions must be a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("partitions must be at least 1")
	}
	return int32(n), nil
}

func parseReplication(s string) (int16, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("replication factor must be a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("replication factor must be at least 1")
	}
	return int16(n), nil
}

// parseNewPartitionCount validates a partition increase. Kafka can only grow
// a topic, never shrink it.
func parseNewPartitionCount(s string, current int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("partition count must be a number")
	}
	if n <= current {
		return 0, fmt.Errorf("partition count must be greater than the current %d", current)
	}
	return n, nil
}

func parseOffset(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("offset must be a number")
	}
	if n < 0 {
		return 0, fmt.Errorf("offset must not be negative")
	}
	return n, nil
}

// parseHeaders turns comma-separated k=v pairs into a header map. An empty
// input is no headers.
func parseHeaders(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("headers must be comma-separated key=value pairs")
		}
		headers[k] = v
	}
	return headers, nil
}

// parseBrokers splits and normalizes a comma-separated broker list.
func parseBrokers(s string) ([]string, error) {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		host, port, ok := strings.Cut(b, ":")
		if !ok || host == "" {
			return nil, fmt.Errorf("broker %q must be host:port", b)
		}
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return nil, fmt.Errorf("broker %q has an invalid port", b)
		}
		brokers = append(brokers, b)
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	return brokers, nil
}

// validateProfileName keeps names usable as display keys.
func validateProfileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("profile name is required")
	}
	return nil
}
