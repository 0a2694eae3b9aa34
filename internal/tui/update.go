package tui

import (
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		if m.fitPending {
			m.fitView()
		}
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
		if m.showAttrs {
			m.refreshShapeTable()
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) overlayOpen() bool {
	return m.palette.open || m.pasteMode || m.showAttrs
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.palette.open {
		return m.updatePalette(msg)
	}
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			m.status = "view mode"
			return m, nil
		case "enter":
			src := strings.TrimSpace(m.ta.Value())
			if src == "" {
				m.status = "paste: empty"
				return m, nil
			}
			if err := m.addPastedWKT(src); err != nil {
				return m, nil
			}
			m.pasteMode = false
			m.ta.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.showAttrs {
		if next, handled := m.updateTable(msg); handled {
			return next, nil
		}
	}

	key := msg.String()
	if m.showSidebar && (key == "up" || key == "down") {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+k", ":":
		cmd := m.openPalette()
		return m, cmd
	case "esc":
		switch {
		case m.drag.mode != dragNone:
			m.cancelDrag()
		case m.showAttrs:
			m.showAttrs = false
		case m.drawMode:
			m.drawMode = false
			m.status = "select mode"
		default:
			m.selected = -1
			m.status = "selection cleared"
		}
		return m, nil
	case "delete", "backspace":
		key = "x"
	case "=":
		key = "+"
	case "_":
		key = "-"
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
		return m, nil
	case "up":
		m.panView(0, -1)
		return m, nil
	case "down":
		m.panView(0, 1)
		return m, nil
	case "left":
		m.panView(-2, 0)
		return m, nil
	case "right":
		m.panView(2, 0)
		return m, nil
	}
	for _, c := range commands() {
		if c.key == key {
			cmd := c.run(&m)
			if m.showAttrs {
				m.refreshShapeTable()
			}
			return m, cmd
		}
	}
	// Pass remaining keys to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// cancelDrag restores the shape captured when the drag began.
func (m *Model) cancelDrag() {
	d := m.drag
	m.drag = dragState{}
	if d.index >= len(m.shapes) {
		return
	}
	switch d.mode {
	case dragResize, dragMove:
		m.shapes[d.index] = d.origin
		m.status = "drag cancelled"
	case dragDraw:
		m.shapes = append(m.shapes[:d.index], m.shapes[d.index+1:]...)
		m.selected = -1
		m.status = "stroke cancelled"
	}
}
