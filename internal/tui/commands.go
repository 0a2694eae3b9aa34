package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"sketchmap/internal/geom"
)

// command is an action reachable from a key and from the palette.
type command struct {
	name string
	key  string
	run  func(*Model) tea.Cmd
}

func commands() []command {
	return []command{
		{"zoom in", "+", (*Model).zoomIn},
		{"zoom out", "-", (*Model).zoomOut},
		{"fit shapes to view", "f", (*Model).fitView},
		{"toggle draw mode", "d", (*Model).toggleDraw},
		{"delete selected shape", "x", (*Model).deleteSelected},
		{"copy selected shape as WKT", "y", (*Model).copySelected},
		{"select next shape", "]", (*Model).selectNext},
		{"select previous shape", "[", (*Model).selectPrev},
		{"toggle shape table", "a", (*Model).toggleAttrs},
		{"toggle file sidebar", "tab", (*Model).toggleSidebar},
		{"paste WKT", "p", (*Model).togglePaste},
		{"toggle help", "h", (*Model).toggleHelp},
		{"quit", "q", (*Model).quit},
	}
}

func (m *Model) zoomIn() tea.Cmd  { return m.zoomCentered(wheelZoom) }
func (m *Model) zoomOut() tea.Cmd { return m.zoomCentered(1 / wheelZoom) }

func (m *Model) zoomCentered(f float64) tea.Cmd {
	if m.viewLocked() {
		return nil
	}
	lay := m.layout()
	m.vp = m.vp.zoomAt(f, float64(lay.mapW), float64(lay.mapH*2))
	m.status = fmt.Sprintf("zoom: %.2fx", m.vp.scale)
	return nil
}

func (m *Model) fitView() tea.Cmd {
	if m.viewLocked() {
		return nil
	}
	if m.width == 0 || m.height == 0 {
		m.fitPending = true
		return nil
	}
	m.fitPending = false
	b, ok := m.shapesBounds()
	if !ok {
		m.vp = viewport{scale: 1}
		return nil
	}
	lay := m.layout()
	m.vp = fit(b, lay.mapW, lay.mapH)
	m.status = fmt.Sprintf("fit %d shapes  zoom: %.2fx", len(m.shapes), m.vp.scale)
	return nil
}

// panView shifts the viewport by whole cells.
func (m *Model) panView(dcx, dcy int) {
	if m.viewLocked() {
		return
	}
	m.vp = m.vp.pan(dcx, dcy)
}

// viewLocked reports whether a drag in progress pins the viewport.
func (m *Model) viewLocked() bool {
	if m.drag.mode == dragNone {
		return false
	}
	m.status = "release the mouse to change the view"
	return true
}

func (m *Model) toggleDraw() tea.Cmd {
	m.drawMode = !m.drawMode
	if m.drawMode {
		m.status = "draw mode: drag to sketch a shape"
	} else {
		m.status = "select mode"
	}
	return nil
}

func (m *Model) deleteSelected() tea.Cmd {
	if m.selected < 0 || m.selected >= len(m.shapes) {
		m.status = "nothing selected"
		return nil
	}
	s := m.shapes[m.selected]
	m.shapes = append(m.shapes[:m.selected], m.shapes[m.selected+1:]...)
	m.selected = -1
	m.drag = dragState{}
	m.status = "deleted " + shapeName(s)
	m.log.Info().Str("shape", s.ID).Msg("deleted")
	return nil
}

func (m *Model) copySelected() tea.Cmd {
	if m.selected < 0 || m.selected >= len(m.shapes) {
		m.status = "nothing selected"
		return nil
	}
	s := m.shapes[m.selected]
	if err := m.copyText(geom.FormatWKT(s)); err != nil {
		m.status = "clipboard error: " + err.Error()
		m.log.Warn().Err(err).Msg("clipboard write failed")
		return nil
	}
	m.status = "copied " + shapeName(s) + " as WKT"
	return nil
}

func (m *Model) selectNext() tea.Cmd { return m.selectStep(1) }
func (m *Model) selectPrev() tea.Cmd { return m.selectStep(-1) }

func (m *Model) selectStep(step int) tea.Cmd {
	n := len(m.shapes)
	if n == 0 {
		m.status = "no shapes"
		return nil
	}
	if m.selected < 0 {
		if step > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
	} else {
		m.selected = ((m.selected+step)%n + n) % n
	}
	m.status = "selected " + shapeName(m.shapes[m.selected])
	return nil
}

func (m *Model) toggleAttrs() tea.Cmd {
	m.showAttrs = !m.showAttrs
	if m.showAttrs {
		m.refreshShapeTable()
	}
	return nil
}

func (m *Model) toggleSidebar() tea.Cmd {
	m.showSidebar = !m.showSidebar
	if m.showSidebar {
		m.refreshDir()
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	}
	return nil
}

func (m *Model) togglePaste() tea.Cmd {
	m.pasteMode = !m.pasteMode
	if m.pasteMode {
		m.ta.SetValue("")
		m.status = "paste mode"
		return m.ta.Focus()
	}
	m.status = "view mode"
	m.ta.Blur()
	return nil
}

func (m *Model) toggleHelp() tea.Cmd {
	m.helpVisible = !m.helpVisible
	return nil
}

func (m *Model) quit() tea.Cmd { return tea.Quit }

// addPastedWKT parses the paste box and appends the shapes it describes.
func (m *Model) addPastedWKT(src string) error {
	shapes, err := geom.ParseWKT(src)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		m.log.Warn().Err(err).Msg("pasted wkt rejected")
		return err
	}
	m.addShapes(shapes)
	m.selected = len(m.shapes) - 1
	m.fitView()
	m.status = fmt.Sprintf("added %d shapes from WKT", len(shapes))
	m.log.Info().Int("shapes", len(shapes)).Msg("pasted wkt")
	return nil
}

func displayPath(p string) string {
	if p == "" {
		return "<unsaved>"
	}
	return filepath.Base(p)
}
