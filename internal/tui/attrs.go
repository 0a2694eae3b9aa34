package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"sketchmap/internal/geom"
)

// refreshShapeTable rebuilds the table from the current shapes.
func (m *Model) refreshShapeTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 10},
		{Title: "label", Width: 12},
		{Title: "kind", Width: 8},
		{Title: "pts", Width: 5},
		{Title: "bounds", Width: 30},
	}
	rows := make([]table.Row, 0, len(m.shapes))
	for i, s := range m.shapes {
		bounds := "empty"
		if b, ok := geom.ComputeBounds(s); ok {
			bounds = fmt.Sprintf("%.0f,%.0f %.0fx%.0f", b.MinX, b.MinY, b.Width, b.Height)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			shortID(s.ID),
			s.Label,
			shapeKind(s),
			fmt.Sprintf("%d", len(s.Points)),
			bounds,
		})
	}
	// clear rows before the column change so no row outgrows the columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if m.selected >= 0 && m.selected < len(rows) {
		m.tbl.SetCursor(m.selected)
	}
}

func shapeKind(s geom.Shape) string {
	switch {
	case len(s.Points) == 0:
		return "empty"
	case len(s.Points) == 1:
		return "point"
	case s.Closed:
		return "polygon"
	default:
		return "stroke"
	}
}

// updateTable routes navigation keys to the table; enter selects the row.
func (m Model) updateTable(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case "up", "k":
		m.tbl.MoveUp(1)
	case "down", "j":
		m.tbl.MoveDown(1)
	case "enter":
		if i := m.tbl.Cursor(); i >= 0 && i < len(m.shapes) {
			m.selected = i
			m.showAttrs = false
			m.status = "selected " + shapeName(m.shapes[i])
		}
	default:
		return m, false
	}
	return m, true
}
