package geom

// Resize drags handle h of s from start to current and returns the reshaped
// copy. startBounds must be the bounds of s when the drag began; every point
// keeps its fractional position inside the box. Only the edges h owns move,
// and none of them may bring the box below m.MinSize.
func (m Metrics) Resize(s Shape, h Handle, current, start Point, startBounds Bounds) Shape {
	d := current.Sub(start)

	minX, minY := startBounds.MinX, startBounds.MinY
	maxX, maxY := startBounds.MaxX, startBounds.MaxY
	if h.movesWest() {
		minX += d.X
	}
	if h.movesEast() {
		maxX += d.X
	}
	if h.movesNorth() {
		minY += d.Y
	}
	if h.movesSouth() {
		maxY += d.Y
	}

	if maxX-minX < m.MinSize {
		if h.movesEast() {
			maxX = minX + m.MinSize
		} else if h.movesWest() {
			minX = maxX - m.MinSize
		}
	}
	if maxY-minY < m.MinSize {
		if h.movesSouth() {
			maxY = minY + m.MinSize
		} else if h.movesNorth() {
			minY = maxY - m.MinSize
		}
	}

	w, ht := maxX-minX, maxY-minY
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		relX, relY := 0.5, 0.5
		if startBounds.Width > 0 {
			relX = (p.X - startBounds.MinX) / startBounds.Width
		}
		if startBounds.Height > 0 {
			relY = (p.Y - startBounds.MinY) / startBounds.Height
		}
		pts[i] = Point{X: minX + relX*w, Y: minY + relY*ht}
	}
	out := s
	out.Points = pts
	return out
}

// Resize is Metrics.Resize with DefaultMetrics.
func Resize(s Shape, h Handle, current, start Point, startBounds Bounds) Shape {
	return DefaultMetrics().Resize(s, h, current, start, startBounds)
}

// Translate returns a copy of s moved by (dx, dy).
func Translate(s Shape, dx, dy float64) Shape {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	out := s
	out.Points = pts
	return out
}
