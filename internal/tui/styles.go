package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0F14")).Background(accentFg).Padding(0, 1)
	matchStyle = lipgloss.NewStyle().Foreground(accentFg).Underline(true)
	pickStyle  = lipgloss.NewStyle().Foreground(baseFg).Background(borderCol)
)

// shapeColors is cycled for shapes that arrive without a colour.
var shapeColors = []string{"#F59E0B", "#10B981", "#EC4899", "#A78BFA", "#38BDF8"}

const drawColor = "#FACC15"
