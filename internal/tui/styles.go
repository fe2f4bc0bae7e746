package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("99")
	colorMuted   = lipgloss.Color("241")
	colorDanger  = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(26).
			Foreground(colorMuted)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary).
				Bold(true)

	selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	resultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2).
				MarginTop(1)

	resultLabelStyle = lipgloss.NewStyle().
				Width(28).
				Foreground(colorMuted)

	resultValueStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
