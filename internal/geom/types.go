package geom

import (
	"errors"
	"math"
	"strconv"
)

var errNotFinite = errors.New("not finite")

// parseOrdinate parses one coordinate value, rejecting NaN and infinities.
func parseOrdinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// Point is a canvas-space coordinate. Canvas y grows downward.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Shape is an ordered outline plus metadata the geometry code never looks at.
type Shape struct {
	ID     string
	Label  string
	Color  string
	Closed bool // polygon ring rather than a freeform stroke
	Points []Point
}

// Bounds is an axis-aligned bounding box. Width and Height are never negative.
type Bounds struct {
	MinX   float64
	MinY   float64
	MaxX   float64
	MaxY   float64
	Width  float64
	Height float64
}
