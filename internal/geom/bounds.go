package geom

// ComputeBounds returns the bounding box of s.
// ok is false when s has no points.
func ComputeBounds(s Shape) (b Bounds, ok bool) {
	return BoundsOf(s.Points)
}

// BoundsOf returns the bounding box of pts, or false for an empty slice.
func BoundsOf(pts []Point) (Bounds, bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return newBounds(minX, minY, maxX, maxY), true
}

func newBounds(minX, minY, maxX, maxY float64) Bounds {
	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Contains reports whether p lies inside b grown by pad on every side.
func (b Bounds) Contains(p Point, pad float64) bool {
	return p.X >= b.MinX-pad && p.X <= b.MaxX+pad &&
		p.Y >= b.MinY-pad && p.Y <= b.MaxY+pad
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return newBounds(
		min(b.MinX, o.MinX),
		min(b.MinY, o.MinY),
		max(b.MaxX, o.MaxX),
		max(b.MaxY, o.MaxY),
	)
}

func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY + b.Height/2}
}
