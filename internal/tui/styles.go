package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#1E40AF")
	accent  = lipgloss.Color("#0D9488")
	muted   = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#DC2626")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Width(16).Foreground(muted)
	focusedLabelStyle = labelStyle.Foreground(primary).Bold(true)
	valueStyle        = lipgloss.NewStyle()
	placeholderStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)

	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).Padding(0, 2)
	tabStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 2)

	helpStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	linkStyle  = lipgloss.NewStyle().Foreground(accent).Underline(true)
)
