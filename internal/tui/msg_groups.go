package tui

import "github.com/shkmv/kafka-tui/internal/kafka"

// groupsLoadedMsg carries a consumer group list fetch result.
type groupsLoadedMsg struct {
	id     string
	groups []kafka.GroupInfo
	err    error
}

// groupDetailLoadedMsg carries one group's members and per-partition lag.
type groupDetailLoadedMsg struct {
	id     string
	group  string
	detail *kafka.GroupDetail
	err    error
}

// brokersLoadedMsg carries the cluster overview fetch result.
type brokersLoadedMsg struct {
	id   string
	info kafka.ClusterInfo
	err  error
}
