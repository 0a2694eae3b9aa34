package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}

	// Header
	mode := "select"
	if m.drawMode {
		mode = "draw"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(" sketchmap ─ shape canvas "),
		modeStyle.Render(mode),
		dimStyle.Render("  "+displayPath(m.selPath)),
	)
	header = lipgloss.NewStyle().Width(lay.contentW).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.palette.open:
		box := m.palette.view(min(48, lay.mapW-4))
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lay.mapW)
		m.ta.SetHeight(min(lay.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).MaxHeight(lay.mapH).
			Render(m.renderCanvas(lay.mapW, lay.mapH))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: status and help on the left, pointer readout on the right
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	pointer := fmt.Sprintf("  %s %s  zoom %.2fx  ", m.cursor.Glyph(), m.cursor, m.vp.scale)
	if m.hovering {
		pointer = fmt.Sprintf("  x=%.1f y=%.1f", m.hoverPt.X, m.hoverPt.Y) + pointer
	}
	coords := dimStyle.Render(pointer)
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"d draw",
		"x del",
		"y copy",
		"f fit",
		"+/- zoom",
		"Tab files",
		"p paste",
		"a table",
		"Ctrl+K cmds",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
