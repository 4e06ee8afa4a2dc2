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
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

// ink is what a braille cell was drawn for. Higher values win when two
// entities share a cell.
type ink uint8

const (
	inkNone ink = iota
	inkGrid
	inkOneSided
	inkTwoSided
	inkThing
	inkTagged
	inkSelected
	inkHilight
	inkDraw
)

var inkStyles = [...]lipgloss.Style{
	inkNone:     lipgloss.NewStyle(),
	inkGrid:     lipgloss.NewStyle().Foreground(lipgloss.Color("#243141")),
	inkOneSided: lipgloss.NewStyle().Foreground(baseFg),
	inkTwoSided: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	inkThing:    lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")),
	inkTagged:   lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
	inkSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
	inkHilight:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
	inkDraw:     lipgloss.NewStyle().Foreground(accentFg),
}
