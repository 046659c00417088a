package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#0e7490", Dark: "#22d3ee"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#6b7280"}
	colorText   = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}

	colorSelectedBg = lipgloss.AdaptiveColor{Light: "#0e7490", Dark: "#22d3ee"}
	colorSelectedFg = lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#000000"}

	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	listTitle     = lipgloss.NewStyle().Foreground(colorAccent)
	itemStyle     = lipgloss.NewStyle().Foreground(colorText)
	selectedStyle = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)
