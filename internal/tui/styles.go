package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("205")
	colorMuted   = lipgloss.Color("241")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")
	colorWarn    = lipgloss.Color("214")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorMuted)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	internalTopicStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	logDebugStyle = lipgloss.NewStyle().Foreground(colorMuted)
	logInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	logWarnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	logErrorStyle = lipgloss.NewStyle().Foreground(colorError)
)
