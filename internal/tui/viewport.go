package tui

import (
	"math"

	"sketchmap/internal/geom"
)

const (
	minScale = 0.02
	maxScale = 64
)

// viewport maps canvas units to braille micro-pixels (2x4 per cell).
// scale is the view scale handed to the geometry code.
type viewport struct {
	scale float64
	x, y  float64 // canvas coordinate of micro-pixel (0, 0)
}

func (v viewport) toMicro(p geom.Point) (float64, float64) {
	return (p.X - v.x) * v.scale, (p.Y - v.y) * v.scale
}

func (v viewport) fromMicro(mx, my float64) geom.Point {
	return geom.Point{X: v.x + mx/v.scale, Y: v.y + my/v.scale}
}

// cellCenter returns the micro-pixel at the middle of a map cell.
func cellCenter(cx, cy int) (float64, float64) {
	return float64(cx*2 + 1), float64(cy*4 + 2)
}

func (v viewport) cellToCanvas(cx, cy int) geom.Point {
	return v.fromMicro(cellCenter(cx, cy))
}

// zoomAt multiplies the scale while keeping the canvas point under the
// micro-pixel (mx, my) fixed.
func (v viewport) zoomAt(factor, mx, my float64) viewport {
	anchor := v.fromMicro(mx, my)
	v.scale = math.Min(maxScale, math.Max(minScale, v.scale*factor))
	v.x = anchor.X - mx/v.scale
	v.y = anchor.Y - my/v.scale
	return v
}

// pan shifts the view by whole cells.
func (v viewport) pan(dcx, dcy int) viewport {
	v.x += float64(dcx*2) / v.scale
	v.y += float64(dcy*4) / v.scale
	return v
}

// fit centres b in a w x h cell map, leaving a one-cell margin.
func fit(b geom.Bounds, w, h int) viewport {
	wMic := float64(max(1, w-2) * 2)
	hMic := float64(max(1, h-2) * 4)
	scale := math.Min(wMic/math.Max(b.Width, 1), hMic/math.Max(b.Height, 1))
	scale = math.Min(maxScale, math.Max(minScale, scale))
	c := b.Center()
	return viewport{
		scale: scale,
		x:     c.X - float64(w*2)/2/scale,
		y:     c.Y - float64(h*4)/2/scale,
	}
}
