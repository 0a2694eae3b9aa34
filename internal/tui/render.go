package tui

import (
	"strings"

	"sketchmap/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lay layout
	if m.showSidebar {
		lay.sidebarW = sidebarWidth
	}
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapW = max(10, lay.contentW-lay.sidebarW-1)
	lay.mapH = lay.contentH
	lay.mapX = lay.sidebarW
	if m.showSidebar {
		lay.mapX++
	}
	lay.mapY = headerHeight
	return lay
}

// mapCell converts a terminal position to a map cell; ok is false outside the map.
func (lay layout) mapCell(x, y int) (cx, cy int, ok bool) {
	cx, cy = x-lay.mapX, y-lay.mapY
	return cx, cy, cx >= 0 && cx < lay.mapW && cy >= 0 && cy < lay.mapH
}

func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	for _, s := range m.shapes {
		br.pen = s.Color
		m.drawShape(br, s)
	}
	if _, b, ok := m.selectedShape(); ok && m.drag.mode != dragDraw {
		m.metrics.DrawHandles(brailleSurface{buf: br, vp: m.vp}, b, m.vp.scale)
	}
	return strings.Join(br.toLines(), "\n")
}

func (m Model) drawShape(br *brailleBuf, s geom.Shape) {
	pix := make([][2]float64, len(s.Points))
	for i, p := range s.Points {
		mx, my := m.vp.toMicro(p)
		pix[i] = [2]float64{mx, my}
	}
	switch len(pix) {
	case 0:
		return
	case 1:
		br.drawLineMicro(pix[0][0], pix[0][1], pix[0][0], pix[0][1])
		return
	}
	for i := 1; i < len(pix); i++ {
		br.drawLineMicro(pix[i-1][0], pix[i-1][1], pix[i][0], pix[i][1])
	}
	if s.Closed && len(pix) > 2 {
		last := pix[len(pix)-1]
		br.drawLineMicro(last[0], last[1], pix[0][0], pix[0][1])
	}
}

// shapesBounds is the union of every shape's bounds.
func (m Model) shapesBounds() (geom.Bounds, bool) {
	var all geom.Bounds
	found := false
	for _, s := range m.shapes {
		b, ok := geom.ComputeBounds(s)
		if !ok {
			continue
		}
		if !found {
			all, found = b, true
			continue
		}
		all = all.Union(b)
	}
	return all, found
}

// shapeAt returns the top-most shape whose bounds, padded by the handle
// tolerance, contain p.
func (m Model) shapeAt(p geom.Point) (int, bool) {
	pad := m.metrics.Tolerance(m.vp.scale)
	for i := len(m.shapes) - 1; i >= 0; i-- {
		if b, ok := geom.ComputeBounds(m.shapes[i]); ok && b.Contains(p, pad) {
			return i, true
		}
	}
	return -1, false
}
