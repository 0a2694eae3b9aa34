package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseWKT parses one geometry per non-empty line.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON, MULTIPOLYGON.
// Polygons keep their outer ring only and come back Closed.
func ParseWKT(src string) ([]Shape, error) {
	var shapes []Shape
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		got, err := parseWKTGeometry(line)
		if err != nil {
			return nil, fmt.Errorf("wkt line %d: %w", i+1, err)
		}
		shapes = append(shapes, got...)
	}
	if len(shapes) == 0 {
		return nil, errors.New("empty wkt")
	}
	return shapes, nil
}

func parseWKTGeometry(s string) ([]Shape, error) {
	// "POINT EMPTY" and friends carry no coordinates
	if f := strings.Fields(strings.ToUpper(s)); len(f) == 2 && f[1] == "EMPTY" {
		if !wktKinds[f[0]] {
			return nil, fmt.Errorf("unsupported wkt type %q", f[0])
		}
		return []Shape{{Closed: f[0] == "POLYGON" || f[0] == "MULTIPOLYGON"}}, nil
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, fmt.Errorf("invalid geometry %q", s)
	}
	kind := strings.ToUpper(strings.TrimSpace(s[:i]))
	body := s[i+1 : j]
	switch kind {
	case "POINT", "LINESTRING":
		pts, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		return []Shape{{Points: pts}}, nil
	case "MULTIPOINT":
		// both "1 2, 3 4" and "(1 2), (3 4)" are valid
		flat := strings.NewReplacer("(", "", ")", "").Replace(body)
		pts, err := parseTuples(flat)
		if err != nil {
			return nil, err
		}
		return []Shape{{Points: pts}}, nil
	case "MULTILINESTRING":
		var out []Shape
		for _, g := range splitGroups(body) {
			pts, err := parseTuples(g)
			if err != nil {
				return nil, err
			}
			out = append(out, Shape{Points: pts})
		}
		return out, nil
	case "POLYGON":
		sh, err := parsePolygon(body)
		if err != nil {
			return nil, err
		}
		return []Shape{sh}, nil
	case "MULTIPOLYGON":
		var out []Shape
		for _, g := range splitGroups(body) {
			sh, err := parsePolygon(g)
			if err != nil {
				return nil, err
			}
			out = append(out, sh)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported wkt type %q", kind)
}

var wktKinds = map[string]bool{
	"POINT": true, "MULTIPOINT": true, "LINESTRING": true,
	"MULTILINESTRING": true, "POLYGON": true, "MULTIPOLYGON": true,
}

func parsePolygon(body string) (Shape, error) {
	rings := splitGroups(body)
	if len(rings) == 0 {
		return Shape{}, errors.New("polygon without rings")
	}
	pts, err := parseTuples(rings[0])
	if err != nil {
		return Shape{}, err
	}
	return Shape{Closed: true, Points: openRing(pts)}, nil
}

// splitGroups returns the contents of each top-level parenthesised group.
func splitGroups(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				out = append(out, s[start:i])
			}
		}
	}
	return out
}

func parseTuples(block string) ([]Point, error) {
	var pts []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("coordinate %q: want x y", strings.TrimSpace(tup))
		}
		x, err := parseOrdinate(parts[0])
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", strings.TrimSpace(tup), err)
		}
		y, err := parseOrdinate(parts[1])
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", strings.TrimSpace(tup), err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if len(pts) == 0 {
		return nil, errors.New("no coordinates")
	}
	return pts, nil
}

// openRing drops the repeated closing vertex of a ring.
func openRing(pts []Point) []Point {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}

// FormatWKT renders s as POINT, LINESTRING or POLYGON.
func FormatWKT(s Shape) string {
	switch {
	case len(s.Points) == 0:
		return "POINT EMPTY"
	case len(s.Points) == 1:
		return "POINT (" + formatTuple(s.Points[0]) + ")"
	case s.Closed:
		ring := append(append([]Point(nil), s.Points...), s.Points[0])
		return "POLYGON ((" + formatTuples(ring) + "))"
	default:
		return "LINESTRING (" + formatTuples(s.Points) + ")"
	}
}

func formatTuples(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatTuple(p)
	}
	return strings.Join(parts, ", ")
}

func formatTuple(p Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
