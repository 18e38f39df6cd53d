package tui

import (
	"sort"

	"github.com/shkmv/kafka-tui/internal/kafka"
)

// sortTopicView orders a filtered topic view in place. Name is the tiebreak
// for the numeric fields so the order stays stable across refreshes.
func sortTopicView(topics []kafka.TopicInfo, field topicSortField, asc bool) {
	sort.SliceStable(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		if !asc {
			a, b = b, a
		}
		switch field {
		case sortByPartitions:
			if a.Partitions != b.Partitions {
				return a.Partitions < b.Partitions
			}
		case sortByReplication:
			if a.ReplicationFactor != b.ReplicationFactor {
				return a.ReplicationFactor < b.ReplicationFactor
			}
		}
		return a.Name < b.Name
	})
}
