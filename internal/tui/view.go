package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the focused screen with the header, status bar and any modal
// overlay.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch s := m.top().(type) {
	case *welcomeScreen:
		body = m.renderWelcome(s)
	case *topicsScreen:
		body = m.renderTopics(s)
	case *topicDetailsScreen:
		body = m.renderTopicDetails(s)
	case *messagesScreen:
		body = m.renderMessages(s)
	case *groupsScreen:
		body = m.renderGroups(s)
	case *groupDetailScreen:
		body = m.renderGroupDetail(s)
	case *brokersScreen:
		body = m.renderBrokers(s)
	case *logsScreen:
		body = m.renderLogs(s)
	}

	sections := []string{m.renderHeader(), body, m.renderStatusBar()}
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showHelp {
		return m.overlay(screen, helpBoxStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	}
	if m.modal != nil {
		return m.overlay(screen, m.modal.view(m.width))
	}
	return screen
}

// overlay centers a box over the base view. Rows the box covers are replaced
// whole; rows above and below keep the underlying screen visible.
func (m model) overlay(base, box string) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < m.height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)

	top := (m.height - len(boxLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (m.width - boxWidth) / 2
	if left < 0 {
		left = 0
	}
	pad := strings.Repeat(" ", left)

	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		filler := boxWidth - lipgloss.Width(line)
		if filler < 0 {
			filler = 0
		}
		baseLines[row] = pad + line + strings.Repeat(" ", filler)
	}
	return strings.Join(baseLines, "\n")
}

// renderHeader shows the app name, the navigation breadcrumb and the active
// profile.
func (m model) renderHeader() string {
	crumbs := make([]string, 0, len(m.stack))
	for _, s := range m.stack {
		crumbs = append(crumbs, s.kind().String())
	}
	left := headerStyle.Render("kafka-tui") + "  " + breadcrumbStyle.Render(strings.Join(crumbs, " › "))

	right := ""
	if m.client != nil {
		right = successStyle.Render("● "+m.activeProfile.Name) + " "
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderStatusBar shows the transient status message, or the filter input
// while filtering, or the short help line.
func (m model) renderStatusBar() string {
	if l := m.topList(); l != nil && l.filtering {
		return m.filterInput.View()
	}
	if m.statusMsg != "" {
		switch m.statusMsgKind {
		case statusError:
			return errorStyle.Render(m.statusMsg)
		case statusSuccess:
			return successStyle.Render(m.statusMsg)
		default:
			return statusInfoStyle.Render(m.statusMsg)
		}
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// listHeight is how many rows fit between the header and the status bar.
func (m model) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// renderRows windows the rendered rows to the scroll position and highlights
// the selection.
func renderRows(rows []string, l *listState, height int) string {
	l.ensureVisible(height)
	end := l.offset + height
	if end > len(rows) {
		end = len(rows)
	}
	var b strings.Builder
	for i := l.offset; i < end; i++ {
		line := rows[i]
		if i == l.selected {
			line = selectedRowStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderScreenError formats a screen-level error prominently in the body.
func renderScreenError(err *screenError) string {
	return errorStyle.Render("✗ " + err.Kind + ": " + err.Detail)
}

func (m model) loadingLine(what string) string {
	return m.spinner.View() + " loading " + what + "..."
}
