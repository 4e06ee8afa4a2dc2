package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mapedit/internal/edit"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.s
	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	// Header
	title := fmt.Sprintf(" mapedit ─ %s mode ", s.mode)
	if m.selPath != "" {
		title += "─ " + baseName(m.selPath) + " "
	}
	if s.drawing() {
		title += fmt.Sprintf("─ %s ", s.draw.State())
	}
	header := titleStyle.Render(title)
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar: import browser or the shape options panel
	var sidebar string
	switch {
	case m.showSidebar:
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	case s.shapePanel:
		sidebar = boxStyle.Width(sidebarWidth - 2).Render(m.shapePanelView())
	}

	var mapView string
	switch {
	case m.help.ShowAll:
		box := boxStyle.Render(m.help.View(m.keys))
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.showProps:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		propsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, propsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap())
	}

	body := mapView
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status and cursor position, then help
	status := dimStyle.Render(" " + s.status + " ")
	if strings.Contains(s.status, "error") {
		status = errStyle.Render(" " + s.status + " ")
	}
	coords := ""
	if m.hovering {
		p := m.drawCursor()
		coords = dimStyle.Render(fmt.Sprintf("  %s  grid %g %s  ", fmtPoint(p), s.gridSize, onOff(s.gridSnap)))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	line1 := status + padRight("", spacerW) + coords
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(line1),
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(m.renderHelp()),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}

// renderHelp shows the drawing tool's help while it is active, the key map
// otherwise.
func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	if len(m.s.help) > 0 {
		return dimStyle.Render("  " + strings.Join(m.s.help, "  "))
	}
	return " " + m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) shapePanelView() string {
	sh := m.s.shape
	lines := []string{
		titleStyle.Render("Shape"),
		"e  kind      " + sh.Kind.String(),
		"r  lock      " + onOff(sh.LockRatio),
		"c  centered  " + onOff(sh.Centered),
	}
	if sh.Kind == edit.ShapeEllipse {
		lines = append(lines, fmt.Sprintf("   sides     %d", sh.Sides))
	}
	return strings.Join(lines, "\n")
}
