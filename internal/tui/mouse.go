package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"sketchmap/internal/geom"
)

const wheelZoom = 1.2

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	lay := m.layout()
	cx, cy, inside := lay.mapCell(msg.X, msg.Y)
	p := m.vp.cellToCanvas(cx, cy)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if !inside || m.drag.mode != dragNone {
			return m
		}
		f := wheelZoom
		if msg.Button == tea.MouseButtonWheelDown {
			f = 1 / wheelZoom
		}
		mx, my := cellCenter(cx, cy)
		m.vp = m.vp.zoomAt(f, mx, my)
		m.status = fmt.Sprintf("zoom: %.2fx", m.vp.scale)
		return m
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside && !m.overlayOpen() {
			m.press(p)
		}
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.dragTo(p)
	case msg.Action == tea.MouseActionRelease:
		m.release()
	}

	m.hovering = inside
	m.hoverPt = p
	m.cursor = m.cursorAt(p)
	return m
}

// cursorAt reports the resize affordance under p. An active resize keeps its
// handle's cursor even when the pointer runs ahead of the box.
func (m Model) cursorAt(p geom.Point) geom.Cursor {
	if m.drag.mode == dragResize {
		return geom.CursorFor(m.drag.handle, true)
	}
	_, b, ok := m.selectedShape()
	if !ok {
		return geom.CursorDefault
	}
	return geom.CursorFor(m.metrics.HandleAt(p, b, m.vp.scale))
}

func (m *Model) press(p geom.Point) {
	if m.drawMode {
		m.addShapes([]geom.Shape{{Color: drawColor, Points: []geom.Point{p}}})
		m.selected = len(m.shapes) - 1
		m.drag = dragState{mode: dragDraw, index: m.selected, start: p}
		return
	}
	if s, b, ok := m.selectedShape(); ok {
		if h, hit := m.metrics.HandleAt(p, b, m.vp.scale); hit {
			m.drag = dragState{mode: dragResize, index: m.selected, handle: h, start: p, startBounds: b, origin: s}
			m.log.Debug().Str("shape", s.ID).Str("handle", h.String()).Msg("resize start")
			return
		}
	}
	i, ok := m.shapeAt(p)
	if !ok {
		m.selected = -1
		m.drag = dragState{}
		m.status = "selection cleared"
		return
	}
	m.selected = i
	s := m.shapes[i]
	m.drag = dragState{mode: dragMove, index: i, start: p, origin: s}
	m.status = "selected " + shapeName(s)
	m.log.Debug().Str("shape", s.ID).Msg("selected")
}

func (m *Model) dragTo(p geom.Point) {
	d := &m.drag
	if d.mode == dragNone || d.index >= len(m.shapes) {
		return
	}
	switch d.mode {
	case dragResize:
		m.shapes[d.index] = m.metrics.Resize(d.origin, d.handle, p, d.start, d.startBounds)
	case dragMove:
		delta := p.Sub(d.start)
		m.shapes[d.index] = geom.Translate(d.origin, delta.X, delta.Y)
	case dragDraw:
		s := &m.shapes[d.index]
		last := s.Points[len(s.Points)-1]
		// one micro-pixel of travel before recording another vertex
		if math.Hypot(p.X-last.X, p.Y-last.Y) >= 1/m.vp.scale {
			s.Points = append(s.Points, p)
		}
	}
}

func (m *Model) release() {
	d := m.drag
	m.drag = dragState{}
	if d.index >= len(m.shapes) {
		return
	}
	s := m.shapes[d.index]
	switch d.mode {
	case dragResize:
		b, _ := geom.ComputeBounds(s)
		m.status = fmt.Sprintf("resized %s via %s to %.0fx%.0f", shapeName(s), d.handle, b.Width, b.Height)
		m.log.Info().Str("shape", s.ID).Str("handle", d.handle.String()).
			Float64("width", b.Width).Float64("height", b.Height).Msg("resized")
	case dragMove:
		if len(s.Points) > 0 && len(d.origin.Points) > 0 && s.Points[0] != d.origin.Points[0] {
			m.status = "moved " + shapeName(s)
			m.log.Info().Str("shape", s.ID).Msg("moved")
		}
	case dragDraw:
		if len(s.Points) < 2 {
			m.shapes = append(m.shapes[:d.index], m.shapes[d.index+1:]...)
			m.selected = -1
			m.status = "stroke too short, discarded"
			return
		}
		m.status = fmt.Sprintf("drew %s (%d points)", shapeName(s), len(s.Points))
		m.log.Info().Str("shape", s.ID).Int("points", len(s.Points)).Msg("drew shape")
	}
}

func shapeName(s geom.Shape) string {
	if s.Label != "" {
		return s.Label
	}
	return shortID(s.ID)
}

// shortID keeps the random tail of a ULID, which is what tells two apart.
func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
