package geom

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestResize_SoutheastScenario(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	got := Resize(s, SE, Point{120, 60}, Point{100, 50}, b)
	want := []Point{{0, 0}, {120, 0}, {120, 60}, {0, 60}}
	for i := range want {
		if !near(got.Points[i], want[i]) {
			t.Fatalf("point %d = %+v, want %+v", i, got.Points[i], want[i])
		}
	}
	nb, _ := ComputeBounds(got)
	if nb.MaxX != 120 || nb.MaxY != 60 || nb.MinX != 0 || nb.MinY != 0 {
		t.Fatalf("new bounds = %+v", nb)
	}
}

func TestResize_WestClampScenario(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	got := Resize(s, W, Point{90, 25}, Point{0, 25}, b)
	nb, _ := ComputeBounds(got)
	if nb.MinX != 80 {
		t.Fatalf("minX = %v, want 80", nb.MinX)
	}
	if nb.MaxX != 100 || nb.Width != DefaultMinSize {
		t.Fatalf("unexpected bounds %+v", nb)
	}
	if nb.MinY != 0 || nb.MaxY != 50 {
		t.Fatalf("west drag moved a vertical edge: %+v", nb)
	}
}

func TestResize_EastMinSize(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	for _, dx := range []float64{-81, -95, -100, -150, -1000} {
		got := Resize(s, E, Point{100 + dx, 10}, Point{100, 10}, b)
		nb, _ := ComputeBounds(got)
		if nb.Width != DefaultMinSize {
			t.Errorf("dx %v: width = %v, want %v", dx, nb.Width, DefaultMinSize)
		}
		if nb.MinX != 0 {
			t.Errorf("dx %v: minX moved to %v", dx, nb.MinX)
		}
	}
}

func TestResize_NorthAndSouthClamp(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	got := Resize(s, N, Point{50, 45}, Point{50, 0}, b)
	nb, _ := ComputeBounds(got)
	if nb.MinY != 30 || nb.MaxY != 50 {
		t.Fatalf("north clamp: %+v", nb)
	}
	got = Resize(s, SW, Point{0, -200}, Point{0, 50}, b)
	nb, _ = ComputeBounds(got)
	if nb.MinY != 0 || nb.MaxY != 20 {
		t.Fatalf("south clamp: %+v", nb)
	}
}

func TestResize_ZeroDeltaIsIdentity(t *testing.T) {
	shapes := []Shape{
		rect(),
		{Points: []Point{{1.5, 2.25}, {37.1, -8}, {12, 90.75}, {-3.3, 14}}},
		{Points: []Point{{5, 5}, {5, 45}, {5, 12}}}, // zero width, tall
	}
	for _, s := range shapes {
		b, _ := ComputeBounds(s)
		for _, h := range Handles {
			start := HandlePosition(b, h)
			got := Resize(s, h, start, start, b)
			if len(got.Points) != len(s.Points) {
				t.Fatalf("%s: point count changed", h)
			}
			for i := range s.Points {
				if b.Width == 0 || b.Height == 0 {
					continue
				}
				if !near(got.Points[i], s.Points[i]) {
					t.Errorf("%s: point %d moved from %+v to %+v", h, i, s.Points[i], got.Points[i])
				}
			}
		}
	}
}

func TestResize_ZeroDeltaSnapsUndersizedSide(t *testing.T) {
	// 100 wide but only 10 tall: any handle that owns a horizontal edge
	// clamps the height to MinSize even without movement
	s := Shape{Closed: true, Points: []Point{{0, 0}, {100, 0}, {100, 10}, {0, 10}}}
	b, _ := ComputeBounds(s)
	cases := []struct {
		h          Handle
		minY, maxY float64
	}{
		{NW, -10, 10},
		{NE, -10, 10},
		{N, -10, 10},
		{SW, 0, 20},
		{SE, 0, 20},
		{S, 0, 20},
		{E, 0, 10},
		{W, 0, 10},
	}
	for _, c := range cases {
		start := HandlePosition(b, c.h)
		got := Resize(s, c.h, start, start, b)
		nb, _ := ComputeBounds(got)
		if nb.MinY != c.minY || nb.MaxY != c.maxY || nb.MinX != 0 || nb.MaxX != 100 {
			t.Errorf("%s: bounds = %+v, want y %v..%v", c.h, nb, c.minY, c.maxY)
		}
	}
}

func TestResize_CornersStayOnCorners(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 300; n++ {
		h := Handles[rng.Intn(len(Handles))]
		start := HandlePosition(b, h)
		cur := Point{start.X + rng.Float64()*400 - 200, start.Y + rng.Float64()*400 - 200}
		got := Resize(s, h, cur, start, b)
		nb, ok := ComputeBounds(got)
		if !ok {
			t.Fatal("lost bounds")
		}
		corners := []Point{{nb.MinX, nb.MinY}, {nb.MaxX, nb.MinY}, {nb.MaxX, nb.MaxY}, {nb.MinX, nb.MaxY}}
		for i, c := range corners {
			if !near(got.Points[i], c) {
				t.Fatalf("%s drag to %+v: point %d = %+v, want corner %+v", h, cur, i, got.Points[i], c)
			}
		}
	}
}

func TestResize_OnlyOwnedEdgesMove(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	d := Point{13, -7}
	for _, h := range Handles {
		start := HandlePosition(b, h)
		got := Resize(s, h, Point{start.X + d.X, start.Y + d.Y}, start, b)
		nb, _ := ComputeBounds(got)
		if !h.movesWest() && nb.MinX != b.MinX {
			t.Errorf("%s moved west edge", h)
		}
		if !h.movesEast() && nb.MaxX != b.MaxX {
			t.Errorf("%s moved east edge", h)
		}
		if !h.movesNorth() && nb.MinY != b.MinY {
			t.Errorf("%s moved north edge", h)
		}
		if !h.movesSouth() && nb.MaxY != b.MaxY {
			t.Errorf("%s moved south edge", h)
		}
	}
}

func TestResize_DegenerateShapeUsesCenter(t *testing.T) {
	s := Shape{Points: []Point{{10, 10}, {10, 10}}}
	b, _ := ComputeBounds(s)
	got := Resize(s, SE, Point{40, 40}, Point{10, 10}, b)
	// box grows to 30x30 from (10,10); both points land in its middle
	for _, p := range got.Points {
		if !near(p, Point{25, 25}) {
			t.Fatalf("point = %+v, want center", p)
		}
	}
}

func TestResize_DoesNotMutateOrAlias(t *testing.T) {
	s := rect()
	orig := append([]Point(nil), s.Points...)
	b, _ := ComputeBounds(s)
	got := Resize(s, NE, Point{130, -10}, Point{100, 0}, b)
	for i := range orig {
		if s.Points[i] != orig[i] {
			t.Fatal("input shape was mutated")
		}
	}
	got.Points[0].X = 999
	if s.Points[0].X == 999 {
		t.Fatal("output aliases input points")
	}
	if got.ID != s.ID || got.Label != s.Label || got.Color != s.Color || got.Closed != s.Closed {
		t.Fatalf("metadata changed: %+v", got)
	}
}

func TestResize_FiniteForFiniteInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 500; n++ {
		pts := make([]Point, 1+rng.Intn(6))
		spread := math.Pow(10, float64(rng.Intn(6)))
		for i := range pts {
			pts[i] = Point{X: rng.Float64() * spread, Y: rng.Float64() * spread}
			if rng.Intn(4) == 0 {
				pts[i] = pts[0]
			}
		}
		s := Shape{Points: pts}
		b, _ := ComputeBounds(s)
		h := Handles[rng.Intn(len(Handles))]
		start := HandlePosition(b, h)
		cur := Point{rng.Float64()*1e4 - 5e3, rng.Float64()*1e4 - 5e3}
		got := Resize(s, h, cur, start, b)
		for _, p := range got.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Fatalf("non-finite point %+v from %+v", p, s)
			}
		}
	}
}

func TestResize_CustomMinSize(t *testing.T) {
	m := Metrics{HandleSize: DefaultHandleSize, MinSize: 5}
	s := rect()
	b, _ := ComputeBounds(s)
	got := m.Resize(s, E, Point{2, 0}, Point{100, 0}, b)
	nb, _ := ComputeBounds(got)
	if nb.Width != 5 {
		t.Fatalf("width = %v, want 5", nb.Width)
	}
}

func TestResize_InvalidHandleMovesNothing(t *testing.T) {
	s := rect()
	b, _ := ComputeBounds(s)
	got := Resize(s, Handle(99), Point{500, 500}, Point{0, 0}, b)
	for i := range s.Points {
		if !near(got.Points[i], s.Points[i]) {
			t.Fatalf("point %d moved", i)
		}
	}
}

func TestTranslate(t *testing.T) {
	s := rect()
	got := Translate(s, 5, -5)
	if got.Points[2] != (Point{105, 45}) {
		t.Fatalf("translated = %+v", got.Points[2])
	}
	if s.Points[2] != (Point{100, 50}) {
		t.Fatal("input mutated")
	}
}
