package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTopicName(t *testing.T) {
	assert.NoError(t, validateTopicName("orders.v1"))
	assert.NoError(t, validateTopicName("_internal-topic_2"))

	assert.Error(t, validateTopicName(""))
	assert.Error(t, validateTopicName("."))
	assert.Error(t, validateTopicName(".."))
	assert.Error(t, validateTopicName("orders/v1"))
	assert.Error(t, validateTopicName("orders v1"))
	assert.Error(t, validateTopicName(strings.Repeat("a", maxTopicNameLen+1)))
	assert.NoError(t, validateTopicName(strings.Repeat("a", maxTopicNameLen)))
}

func TestParsePartitions(t *testing.T) {
	n, err := parsePartitions(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int32(12), n)

	_, err = parsePartitions("0")
	assert.Error(t, err)
	_, err = parsePartitions("-3")
	assert.Error(t, err)
	_, err = parsePartitions("many")
	assert.Error(t, err)
}

func TestParseReplication(t *testing.T) {
	n, err := parseReplication("3")
	require.NoError(t, err)
	assert.Equal(t, int16(3), n)

	_, err = parseReplication("0")
	assert.Error(t, err)
}

func TestParseNewPartitionCount(t *testing.T) {
	n, err := parseNewPartitionCount("6", 3)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = parseNewPartitionCount("3", 3)
	assert.Error(t, err, "count must grow")
	_, err = parseNewPartitionCount("2", 3)
	assert.Error(t, err, "shrinking is impossible")
}

func TestParseOffset(t *testing.T) {
	n, err := parseOffset("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = parseOffset("-1")
	assert.Error(t, err)
	_, err = parseOffset("abc")
	assert.Error(t, err)
}

func TestParseHeaders(t *testing.T) {
	h, err := parseHeaders("trace-id=abc, source=web")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"trace-id": "abc", "source": "web"}, h)

	h, err = parseHeaders("")
	require.NoError(t, err)
	assert.Nil(t, h)

	_, err = parseHeaders("not-a-pair")
	assert.Error(t, err)
	_, err = parseHeaders("=value")
	assert.Error(t, err)
}

func TestParseBrokers(t *testing.T) {
	brokers, err := parseBrokers("localhost:9092, broker-2:9093")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:9092", "broker-2:9093"}, brokers)

	_, err = parseBrokers("")
	assert.Error(t, err)
	_, err = parseBrokers("no-port")
	assert.Error(t, err)
	_, err = parseBrokers("host:notaport")
	assert.Error(t, err)
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, matchesFilter("Orders.v1", "orders"))
	assert.True(t, matchesFilter("orders", "ORD"))
	assert.True(t, matchesFilter("anything", ""))
	assert.False(t, matchesFilter("orders", "payments"))
}
