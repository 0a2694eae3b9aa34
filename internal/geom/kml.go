package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords `xml:"outerBoundaryIs>LinearRing"`
}

type kmlGeometry struct {
	Points      []kmlCoords  `xml:"Point"`
	LineStrings []kmlCoords  `xml:"LineString"`
	Polygons    []kmlPolygon `xml:"Polygon"`
}

type kmlPlacemark struct {
	Name  string      `xml:"name"`
	Multi kmlGeometry `xml:"MultiGeometry"`
	kmlGeometry
}

// LoadKML extracts Point, LineString and Polygon outer rings from every
// Placemark, however deeply it is nested in Documents and Folders.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored and latitude is
// negated like GeoJSON.
func LoadKML(path string) ([]Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseKML(f)
}

func ParseKML(r io.Reader) ([]Shape, error) {
	dec := xml.NewDecoder(r)
	var shapes []Shape
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, fmt.Errorf("kml placemark: %w", err)
		}
		got, err := placemarkShapes(pm)
		if err != nil {
			return nil, fmt.Errorf("kml placemark %q: %w", pm.Name, err)
		}
		shapes = append(shapes, got...)
	}
	if len(shapes) == 0 {
		return nil, errors.New("kml: no geometries found")
	}
	return shapes, nil
}

func placemarkShapes(pm kmlPlacemark) ([]Shape, error) {
	var out []Shape
	add := func(c string, closed bool) error {
		pts, err := parseKMLCoords(c)
		if err != nil {
			return err
		}
		if closed {
			pts = openRing(pts)
		}
		out = append(out, Shape{Label: strings.TrimSpace(pm.Name), Closed: closed, Points: pts})
		return nil
	}
	for _, g := range []kmlGeometry{pm.kmlGeometry, pm.Multi} {
		for _, p := range g.Points {
			if err := add(p.Coordinates, false); err != nil {
				return nil, err
			}
		}
		for _, ls := range g.LineStrings {
			if err := add(ls.Coordinates, false); err != nil {
				return nil, err
			}
		}
		for _, poly := range g.Polygons {
			if err := add(poly.Outer.Coordinates, true); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func parseKMLCoords(s string) ([]Point, error) {
	var pts []Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("coordinate %q: want lon,lat", tuple)
		}
		lon, err := parseOrdinate(strings.TrimSpace(vals[0]))
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", tuple, err)
		}
		lat, err := parseOrdinate(strings.TrimSpace(vals[1]))
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", tuple, err)
		}
		pts = append(pts, Point{X: lon, Y: -lat})
	}
	if len(pts) == 0 {
		return nil, errors.New("no coordinates")
	}
	return pts, nil
}
