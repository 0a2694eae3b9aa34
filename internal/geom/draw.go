package geom

// Handle colours and stroke width (screen units).
const (
	HandleFill        = "#3B82F6"
	HandleStroke      = "#FFFFFF"
	HandleStrokeWidth = 1.5
)

// Surface receives immediate-mode drawing calls in canvas coordinates.
type Surface interface {
	FillRect(x, y, w, h float64, color string)
	StrokeRect(x, y, w, h, lineWidth float64, color string)
}

// DrawHandles paints the eight handles of b as squares that keep a constant
// on-screen size. The side length equals the hit-test radius of HandleAt.
func (m Metrics) DrawHandles(s Surface, b Bounds, scale float64) {
	size := m.Tolerance(scale)
	lw := HandleStrokeWidth / scale
	for _, h := range Handles {
		p := HandlePosition(b, h)
		x, y := p.X-size/2, p.Y-size/2
		s.FillRect(x, y, size, size, HandleFill)
		s.StrokeRect(x, y, size, size, lw, HandleStroke)
	}
}

// DrawHandles is Metrics.DrawHandles with DefaultMetrics.
func DrawHandles(s Surface, b Bounds, scale float64) {
	DefaultMetrics().DrawHandles(s, b, scale)
}
