package geom

import "math"

// Handle identifies one of the eight grab points on a bounding box.
type Handle uint8

const (
	NW Handle = iota
	NE
	SW
	SE
	N
	S
	E
	W
)

// Handles lists every handle in hit-test priority order.
var Handles = [...]Handle{NW, NE, SW, SE, N, S, E, W}

const (
	// DefaultHandleSize is the handle side length and hit radius in screen units.
	DefaultHandleSize = 8.0
	// DefaultMinSize is the smallest width or height a resize may produce, in canvas units.
	DefaultMinSize = 20.0
)

func (h Handle) String() string {
	switch h {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	case N:
		return "n"
	case S:
		return "s"
	case E:
		return "e"
	case W:
		return "w"
	default:
		return "invalid"
	}
}

// Edge membership of each handle, used by Resize and the clamp.
func (h Handle) movesWest() bool  { return h == NW || h == SW || h == W }
func (h Handle) movesEast() bool  { return h == NE || h == SE || h == E }
func (h Handle) movesNorth() bool { return h == NW || h == NE || h == N }
func (h Handle) movesSouth() bool { return h == SW || h == SE || h == S }

// HandlePosition returns the canvas position of h on b.
func HandlePosition(b Bounds, h Handle) Point {
	switch h {
	case NW:
		return Point{X: b.MinX, Y: b.MinY}
	case NE:
		return Point{X: b.MaxX, Y: b.MinY}
	case SW:
		return Point{X: b.MinX, Y: b.MaxY}
	case SE:
		return Point{X: b.MaxX, Y: b.MaxY}
	case N:
		return Point{X: b.MinX + b.Width/2, Y: b.MinY}
	case S:
		return Point{X: b.MinX + b.Width/2, Y: b.MaxY}
	case E:
		return Point{X: b.MaxX, Y: b.MinY + b.Height/2}
	case W:
		return Point{X: b.MinX, Y: b.MinY + b.Height/2}
	default:
		return b.Center()
	}
}

// Metrics holds the tunable sizes of the handle and resize code.
// The zero value is not useful; start from DefaultMetrics.
type Metrics struct {
	HandleSize float64 // screen units
	MinSize    float64 // canvas units
}

func DefaultMetrics() Metrics {
	return Metrics{HandleSize: DefaultHandleSize, MinSize: DefaultMinSize}
}

// Tolerance converts the handle size to canvas units at the given view scale.
func (m Metrics) Tolerance(scale float64) float64 {
	return m.HandleSize / scale
}

// HandleAt returns the first handle, in Handles order, whose distance to p is
// within the tolerance. At small box sizes several radii overlap and the order
// decides, not the distance.
func (m Metrics) HandleAt(p Point, b Bounds, scale float64) (Handle, bool) {
	tol := m.Tolerance(scale)
	for _, h := range Handles {
		pos := HandlePosition(b, h)
		if math.Hypot(p.X-pos.X, p.Y-pos.Y) <= tol {
			return h, true
		}
	}
	return 0, false
}

// HitTestHandle is HandleAt with DefaultMetrics.
func HitTestHandle(p Point, b Bounds, scale float64) (Handle, bool) {
	return DefaultMetrics().HandleAt(p, b, scale)
}
