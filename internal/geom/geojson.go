package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type geoJSONObject struct {
	Type        string          `json:"type"`
	ID          any             `json:"id"`
	Properties  map[string]any  `json:"properties"`
	Geometry    *geoJSONObject  `json:"geometry"`
	Features    []geoJSONObject `json:"features"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  []geoJSONObject `json:"geometries"`
}

// LoadGeoJSON reads a GeoJSON file. See ParseGeoJSON.
func LoadGeoJSON(path string) ([]Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON converts every geometry into shapes. Longitude becomes X and
// latitude is negated into Y so north stays up on the y-down canvas.
// Feature ids and the "label"/"name" and "color"/"stroke" properties are kept.
func ParseGeoJSON(data []byte) ([]Shape, error) {
	var root geoJSONObject
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if root.Type == "" {
		return nil, errors.New("geojson: missing type")
	}
	var shapes []Shape
	var walk func(o geoJSONObject, meta Shape) error
	walk = func(o geoJSONObject, meta Shape) error {
		switch o.Type {
		case "FeatureCollection":
			for _, f := range o.Features {
				if err := walk(f, Shape{}); err != nil {
					return err
				}
			}
			return nil
		case "Feature":
			if o.Geometry == nil {
				return nil
			}
			return walk(*o.Geometry, featureMeta(o))
		case "GeometryCollection":
			for _, g := range o.Geometries {
				if err := walk(g, meta); err != nil {
					return err
				}
			}
			return nil
		}
		got, err := geoJSONShapes(o.Type, o.Coordinates)
		if err != nil {
			return fmt.Errorf("geojson %s: %w", o.Type, err)
		}
		for _, s := range got {
			s.ID, s.Label, s.Color = meta.ID, meta.Label, meta.Color
			shapes = append(shapes, s)
		}
		return nil
	}
	if err := walk(root, Shape{}); err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, errors.New("geojson: no geometries found")
	}
	// one feature may expand into several shapes; ids must stay unique
	seen := map[string]int{}
	for i := range shapes {
		if id := shapes[i].ID; id != "" {
			seen[id]++
			if seen[id] > 1 {
				shapes[i].ID = fmt.Sprintf("%s-%d", id, seen[id])
			}
		}
	}
	return shapes, nil
}

func featureMeta(f geoJSONObject) Shape {
	var s Shape
	switch id := f.ID.(type) {
	case string:
		s.ID = id
	case float64:
		s.ID = fmt.Sprintf("%g", id)
	}
	s.Label = firstString(f.Properties, "label", "name")
	s.Color = firstString(f.Properties, "color", "stroke")
	return s
}

func firstString(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func geoJSONShapes(kind string, raw json.RawMessage) ([]Shape, error) {
	switch kind {
	case "Point":
		var c []float64
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		p, err := lonLat(c)
		if err != nil {
			return nil, err
		}
		return []Shape{{Points: []Point{p}}}, nil
	case "MultiPoint", "LineString":
		var c [][]float64
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		pts, err := lonLats(c)
		if err != nil {
			return nil, err
		}
		return []Shape{{Points: pts}}, nil
	case "MultiLineString":
		var c [][][]float64
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		out := make([]Shape, 0, len(c))
		for _, ls := range c {
			pts, err := lonLats(ls)
			if err != nil {
				return nil, err
			}
			out = append(out, Shape{Points: pts})
		}
		return out, nil
	case "Polygon":
		var c [][][]float64
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		s, err := geoJSONPolygon(c)
		if err != nil {
			return nil, err
		}
		return []Shape{s}, nil
	case "MultiPolygon":
		var c [][][][]float64
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		out := make([]Shape, 0, len(c))
		for _, poly := range c {
			s, err := geoJSONPolygon(poly)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported geometry type %q", kind)
}

func geoJSONPolygon(rings [][][]float64) (Shape, error) {
	if len(rings) == 0 {
		return Shape{}, errors.New("polygon without rings")
	}
	pts, err := lonLats(rings[0])
	if err != nil {
		return Shape{}, err
	}
	return Shape{Closed: true, Points: openRing(pts)}, nil
}

func lonLats(c [][]float64) ([]Point, error) {
	if len(c) == 0 {
		return nil, errors.New("no coordinates")
	}
	pts := make([]Point, 0, len(c))
	for _, pos := range c {
		p, err := lonLat(pos)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func lonLat(pos []float64) (Point, error) {
	if len(pos) < 2 {
		return Point{}, fmt.Errorf("position %v: want [lon, lat]", pos)
	}
	return Point{X: pos[0], Y: -pos[1]}, nil
}
