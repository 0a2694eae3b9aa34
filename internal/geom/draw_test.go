package geom

import (
	"math"
	"testing"
)

type rectCall struct {
	fill       bool
	x, y, w, h float64
	lineWidth  float64
	color      string
}

type recordingSurface struct{ calls []rectCall }

func (r *recordingSurface) FillRect(x, y, w, h float64, color string) {
	r.calls = append(r.calls, rectCall{fill: true, x: x, y: y, w: w, h: h, color: color})
}

func (r *recordingSurface) StrokeRect(x, y, w, h, lineWidth float64, color string) {
	r.calls = append(r.calls, rectCall{x: x, y: y, w: w, h: h, lineWidth: lineWidth, color: color})
}

func TestDrawHandles(t *testing.T) {
	b, _ := ComputeBounds(rect())
	var s recordingSurface
	DrawHandles(&s, b, 2)
	if len(s.calls) != 2*len(Handles) {
		t.Fatalf("got %d calls, want %d", len(s.calls), 2*len(Handles))
	}
	for i, h := range Handles {
		fill, stroke := s.calls[2*i], s.calls[2*i+1]
		if !fill.fill || fill.color != HandleFill {
			t.Errorf("%s: bad fill call %+v", h, fill)
		}
		if stroke.fill || stroke.color != HandleStroke || stroke.lineWidth != HandleStrokeWidth/2 {
			t.Errorf("%s: bad stroke call %+v", h, stroke)
		}
		if fill.w != 4 || fill.h != 4 {
			t.Errorf("%s: size %vx%v, want 4x4 at scale 2", h, fill.w, fill.h)
		}
		p := HandlePosition(b, h)
		if fill.x+fill.w/2 != p.X || fill.y+fill.h/2 != p.Y {
			t.Errorf("%s: square not centered on %+v", h, p)
		}
	}
}

func TestDrawHandles_MatchesHitRadius(t *testing.T) {
	b, _ := ComputeBounds(rect())
	m := Metrics{HandleSize: 12, MinSize: DefaultMinSize}
	for _, scale := range []float64{0.5, 1, 4} {
		var s recordingSurface
		m.DrawHandles(&s, b, scale)
		side := s.calls[0].w
		if math.Abs(side-m.Tolerance(scale)) > eps {
			t.Fatalf("scale %v: drawn side %v != hit radius %v", scale, side, m.Tolerance(scale))
		}
		// the corner of the drawn square is within the hit radius of the handle
		se := HandlePosition(b, SE)
		if _, ok := m.HandleAt(Point{se.X + side/2, se.Y + side/2}, b, scale); !ok {
			t.Fatalf("scale %v: drawn corner not clickable", scale)
		}
	}
}
