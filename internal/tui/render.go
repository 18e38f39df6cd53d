package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/shkmv/kafka-tui/internal/kafka"
)

// cell pads or truncates a value to a fixed column width.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func (m model) renderWelcome(s *welcomeScreen) string {
	if s.loading {
		return m.loadingLine("profiles")
	}
	if s.lastErr != nil {
		return renderScreenError(s.lastErr)
	}

	profiles := s.visible()
	if len(profiles) == 0 {
		if s.list.filter != "" {
			return mutedStyle.Render("no profiles match " + s.list.filter)
		}
		return mutedStyle.Render("No profiles yet. Press n to add one.")
	}

	header := columnHeaderStyle.Render("  " + cell("NAME", 20) + cell("BROKERS", 40) + cell("AUTH", 16) + cell("LAST USED", 16))
	rows := make([]string, 0, len(profiles))
	for _, p := range profiles {
		lastUsed := "never"
		if !p.LastUsed.IsZero() {
			lastUsed = humanize.Time(p.LastUsed)
		}
		row := cell(p.Name, 20) + cell(strings.Join(p.Brokers, ","), 40) + cell(authLabel(p.Auth), 16) + cell(lastUsed, 16)
		if s.connecting == p.Name {
			row += " " + m.spinner.View()
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, renderRows(rows, &s.list, m.listHeight()))
}

func (m model) renderTopics(s *topicsScreen) string {
	if s.loading {
		return m.loadingLine("topics")
	}
	if s.lastErr != nil {
		return renderScreenError(s.lastErr)
	}

	topics := s.visible()
	if len(topics) == 0 {
		if s.list.filter != "" {
			return mutedStyle.Render("no topics match " + s.list.filter)
		}
		return mutedStyle.Render("No topics. Press n to create one.")
	}

	sortMark := "↑"
	if !s.sortAsc {
		sortMark = "↓"
	}
	header := columnHeaderStyle.Render(fmt.Sprintf("  %s%s%s  sorted by %s %s",
		cell("NAME", 48), cell("PARTITIONS", 12), cell("REPLICATION", 12), s.sortField, sortMark))
	rows := make([]string, 0, len(topics))
	for _, t := range topics {
		row := cell(t.Name, 48) + cell(fmt.Sprintf("%d", t.Partitions), 12) + cell(fmt.Sprintf("%d", t.ReplicationFactor), 12)
		if t.IsInternal {
			row = internalTopicStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, renderRows(rows, &s.list, m.listHeight()))
}

func renderTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = tabActiveStyle.Render(l)
		} else {
			parts[i] = tabInactiveStyle.Render(l)
		}
	}
	return strings.Join(parts, "  ")
}

func (m model) renderTopicDetails(s *topicDetailsScreen) string {
	tabs := renderTabs([]string{"Partitions", "Config"}, int(s.tab))
	if s.loading {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, m.loadingLine(s.topic))
	}
	if s.lastErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, renderScreenError(s.lastErr))
	}
	if s.detail == nil {
		return tabs
	}

	var header string
	var rows []string
	if s.tab == tabConfig {
		header = columnHeaderStyle.Render("  " + cell("KEY", 40) + cell("VALUE", 48))
		for _, c := range s.detail.Configs {
			value := c.Value
			if c.Sensitive {
				value = "********"
			}
			rows = append(rows, cell(c.Key, 40)+cell(value, 48))
		}
	} else {
		header = columnHeaderStyle.Render("  " + cell("ID", 6) + cell("LEADER", 8) + cell("REPLICAS", 16) + cell("ISR", 16) + cell("START", 14) + cell("END", 14) + cell("COUNT", 12))
		for _, p := range s.detail.Partitions {
			rows = append(rows, cell(fmt.Sprintf("%d", p.ID), 6)+
				cell(fmt.Sprintf("%d", p.Leader), 8)+
				cell(joinInt32(p.Replicas), 16)+
				cell(joinInt32(p.InSyncReplicas), 16)+
				cell(humanize.Comma(p.StartOffset), 14)+
				cell(humanize.Comma(p.EndOffset), 14)+
				cell(humanize.Comma(p.EndOffset-p.StartOffset), 12))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabs, header, renderRows(rows, &s.list, m.listHeight()-1))
}

func joinInt32(ids []int32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

func (m model) renderMessages(s *messagesScreen) string {
	if s.detailExpanded {
		title := headerStyle.Render(s.topic) + mutedStyle.Render("  esc to close · y to copy")
		return lipgloss.JoinVertical(lipgloss.Left, title, s.detailView.View())
	}

	state := mutedStyle.Render("paused")
	if s.consuming {
		state = successStyle.Render("live " + m.spinner.View())
	}
	title := headerStyle.Render(s.topic) + "  " + mutedStyle.Render("from "+s.start.Mode.String()) + "  " + state

	if s.lastErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, renderScreenError(s.lastErr))
	}

	records := s.visible()
	if len(records) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("waiting for messages..."))
	}

	valueWidth := m.width - 64
	if valueWidth < 16 {
		valueWidth = 16
	}
	header := columnHeaderStyle.Render("  " + cell("PART", 6) + cell("OFFSET", 12) + cell("TIME", 20) + cell("KEY", 24) + "VALUE")
	rows := make([]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, cell(fmt.Sprintf("%d", r.Partition), 6)+
			cell(fmt.Sprintf("%d", r.Offset), 12)+
			cell(r.Timestamp.Format("15:04:05.000"), 20)+
			cell(r.Key, 24)+
			runewidth.Truncate(strings.ReplaceAll(r.Value, "\n", " "), valueWidth, "…"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, header, renderRows(rows, &s.list, m.listHeight()-1))
}

// recordDetailContent is the full message rendering for the expanded view.
func recordDetailContent(r kafka.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Partition: %d\n", r.Partition)
	fmt.Fprintf(&b, "Offset:    %d\n", r.Offset)
	fmt.Fprintf(&b, "Timestamp: %s\n", r.Timestamp.Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "Key:       %s\n", r.Key)
	if len(r.Headers) > 0 {
		b.WriteString("Headers:\n")
		keys := make([]string, 0, len(r.Headers))
		for k := range r.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, r.Headers[k])
		}
	}
	b.WriteString("\n")
	b.WriteString(r.Value)
	return b.String()
}

func (m model) renderGroups(s *groupsScreen) string {
	if s.loading {
		return m.loadingLine("consumer groups")
	}
	if s.lastErr != nil {
		return renderScreenError(s.lastErr)
	}

	groups := s.visible()
	if len(groups) == 0 {
		if s.list.filter != "" {
			return mutedStyle.Render("no groups match " + s.list.filter)
		}
		return mutedStyle.Render("No consumer groups.")
	}

	header := columnHeaderStyle.Render("  " + cell("GROUP", 48) + cell("STATE", 20) + cell("MEMBERS", 10))
	rows := make([]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, cell(g.GroupID, 48)+cell(g.State, 20)+cell(fmt.Sprintf("%d", g.Members), 10))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, renderRows(rows, &s.list, m.listHeight()))
}

func (m model) renderGroupDetail(s *groupDetailScreen) string {
	tabs := renderTabs([]string{"Offsets", "Members"}, int(s.tab))
	if s.loading {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, m.loadingLine(s.groupID))
	}
	if s.lastErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, renderScreenError(s.lastErr))
	}
	if s.detail == nil {
		return tabs
	}

	summary := mutedStyle.Render(fmt.Sprintf("%s · %s · coordinator %d", s.detail.GroupID, s.detail.State, s.detail.Coordinator.ID))

	var header string
	var rows []string
	if s.tab == tabMembers {
		header = columnHeaderStyle.Render("  " + cell("MEMBER", 40) + cell("CLIENT", 24) + cell("HOST", 24) + cell("ASSIGNED", 10))
		for _, mem := range s.detail.Members {
			rows = append(rows, cell(mem.MemberID, 40)+cell(mem.ClientID, 24)+cell(mem.ClientHost, 24)+cell(fmt.Sprintf("%d", len(mem.Assignments)), 10))
		}
	} else {
		header = columnHeaderStyle.Render("  " + cell("TOPIC", 40) + cell("PART", 6) + cell("COMMITTED", 14) + cell("END", 14) + cell("LAG", 10))
		for _, o := range s.detail.Offsets {
			lag := cell(humanize.Comma(o.Lag), 10)
			if o.Lag > 0 {
				lag = logWarnStyle.Render(lag)
			}
			rows = append(rows, cell(o.Topic, 40)+cell(fmt.Sprintf("%d", o.Partition), 6)+
				cell(humanize.Comma(o.CommittedOffset), 14)+cell(humanize.Comma(o.EndOffset), 14)+lag)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabs, summary, header, renderRows(rows, &s.list, m.listHeight()-2))
}

func (m model) renderBrokers(s *brokersScreen) string {
	if s.loading {
		return m.loadingLine("cluster metadata")
	}
	if s.lastErr != nil {
		return renderScreenError(s.lastErr)
	}

	summary := mutedStyle.Render(fmt.Sprintf("cluster %s · controller %d", s.info.ClusterID, s.info.ControllerID))
	header := columnHeaderStyle.Render("  " + cell("ID", 6) + cell("ADDRESS", 40) + cell("RACK", 16) + cell("ROLE", 12))
	rows := make([]string, 0, len(s.info.Brokers))
	for _, b := range s.info.Brokers {
		role := ""
		if b.ID == s.info.ControllerID {
			role = "controller"
		}
		rows = append(rows, cell(fmt.Sprintf("%d", b.ID), 6)+
			cell(fmt.Sprintf("%s:%d", b.Host, b.Port), 40)+
			cell(b.Rack, 16)+cell(role, 12))
	}
	return lipgloss.JoinVertical(lipgloss.Left, summary, header, renderRows(rows, &s.list, m.listHeight()-1))
}

func (m model) renderLogs(s *logsScreen) string {
	if len(m.logEntries) == 0 {
		return mutedStyle.Render("No log entries yet.")
	}

	follow := mutedStyle.Render("follow off")
	if s.follow {
		follow = successStyle.Render("follow on")
	}
	title := headerStyle.Render("Logs") + "  " + follow

	rows := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		var levelStyle lipgloss.Style
		switch e.Level.String() {
		case "DEBUG":
			levelStyle = logDebugStyle
		case "WARN":
			levelStyle = logWarnStyle
		case "ERROR":
			levelStyle = logErrorStyle
		default:
			levelStyle = logInfoStyle
		}
		msg := e.Message
		if e.Err != nil {
			msg += " (" + e.Err.Error() + ")"
		}
		rows = append(rows, e.Timestamp.Format("15:04:05.000")+" "+
			levelStyle.Render(cell(e.Level.String(), 6))+
			mutedStyle.Render(cell(e.Subsystem, 10))+msg)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, renderRows(rows, &s.list, m.listHeight()-1))
}
