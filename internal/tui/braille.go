package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sketchmap/internal/geom"
)

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	ink  [][]string // per-cell colour, "" for default

	pen       string
	overwrite bool // pen replaces an existing cell colour
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	ink := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		ink[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: ink, overwrite: true}
}

// brailleBits indexes [column][row] inside a 2x4 cell.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) in the current pen.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
	if b.pen != "" && (b.overwrite || b.ink[cy][cx] == "") {
		b.ink[cy][cx] = b.pen
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham. The segment is
// clipped to the buffer first, so only visible pixels are walked.
func (b *brailleBuf) drawLineMicro(fx0, fy0, fx1, fy1 float64) {
	fx0, fy0, fx1, fy1, ok := clipSegment(fx0, fy0, fx1, fy1,
		math.Nextafter(float64(b.w*2), 0), math.Nextafter(float64(b.h*4), 0))
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(fx0)), int(math.Floor(fy0))
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for steps := 0; steps < maxLineSteps; steps++ {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// maxLineSteps bounds a clipped walk; a clipped segment never needs more.
const maxLineSteps = 1 << 16

// clipSegment clips a segment to [0, xmax] x [0, ymax] (Liang-Barsky).
// ok is false when no part of it is inside.
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if xmax < 0 || ymax < 0 {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// fillMicro sets every micro-pixel covered by the half-open float rect.
func (b *brailleBuf) fillMicro(x0, y0, x1, y1 float64) {
	xs, ys := pixelSpan(x0, x1), pixelSpan(y0, y1)
	for y := max(0, ys[0]); y <= min(ys[1], b.h*4-1); y++ {
		for x := max(0, xs[0]); x <= min(xs[1], b.w*2-1); x++ {
			b.setPixel(x, y)
		}
	}
}

// pixelSpan returns the first and last pixel index touched by [a, c),
// always at least one pixel wide.
func pixelSpan(a, c float64) [2]int {
	lo := int(math.Floor(a))
	hi := int(math.Ceil(c)) - 1
	if hi < lo {
		hi = lo
	}
	return [2]int{lo, hi}
}

func (b *brailleBuf) toLines() []string {
	styles := map[string]lipgloss.Style{}
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			glyph := string(rune(0x2800 + int(mask)))
			c := b.ink[y][x]
			if c == "" {
				sb.WriteString(glyph)
				continue
			}
			st, ok := styles[c]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
				styles[c] = st
			}
			sb.WriteString(st.Render(glyph))
		}
		out[y] = sb.String()
	}
	return out
}

// brailleSurface lets the geometry code draw on the buffer in canvas units.
type brailleSurface struct {
	buf *brailleBuf
	vp  viewport
}

func (s brailleSurface) FillRect(x, y, w, h float64, color string) {
	x0, y0 := s.vp.toMicro(geom.Point{X: x, Y: y})
	x1, y1 := s.vp.toMicro(geom.Point{X: x + w, Y: y + h})
	s.buf.pen, s.buf.overwrite = color, true
	s.buf.fillMicro(x0, y0, x1, y1)
}

// StrokeRect outlines the rect without recolouring cells a fill already
// painted, so handles keep their fill colour at cell resolution.
func (s brailleSurface) StrokeRect(x, y, w, h, lineWidth float64, color string) {
	x0, y0 := s.vp.toMicro(geom.Point{X: x, Y: y})
	x1, y1 := s.vp.toMicro(geom.Point{X: x + w, Y: y + h})
	t := math.Max(1, math.Round(lineWidth*s.vp.scale))
	s.buf.pen, s.buf.overwrite = color, false
	s.buf.fillMicro(x0, y0, x1, y0+t)
	s.buf.fillMicro(x0, y1-t, x1, y1)
	s.buf.fillMicro(x0, y0, x0+t, y1)
	s.buf.fillMicro(x1-t, y0, x1, y1)
	s.buf.overwrite = true
}

var _ geom.Surface = brailleSurface{}
