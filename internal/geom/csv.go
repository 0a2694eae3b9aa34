package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadCSV reads vertex rows into shapes.
//
// Column detection is case-insensitive: x|lon|lng|long|longitude and
// y|lat|latitude are required; shape|id|group groups rows into shapes in
// first-seen order, and label and color are picked up from the first row of
// each shape. Without a grouping column all rows form one stroke. Latitude
// columns are negated like GeoJSON.
func LoadCSV(path string) ([]Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}

	idxX, idxY, idxGroup, idxLabel, idxColor := -1, -1, -1, -1, -1
	geo := false
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			idxX = pick(idxX, i)
		case "y":
			idxY = pick(idxY, i)
		case "lat", "latitude":
			if idxY == -1 {
				geo = true
			}
			idxY = pick(idxY, i)
		case "shape", "id", "group":
			idxGroup = pick(idxGroup, i)
		case "label", "name":
			idxLabel = pick(idxLabel, i)
		case "color":
			idxColor = pick(idxColor, i)
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y (or longitude/latitude) columns not found")
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var shapes []Shape
	byGroup := map[string]int{}
	for n, row := range recs[1:] {
		x, err := parseOrdinate(cell(row, idxX))
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		y, err := parseOrdinate(cell(row, idxY))
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		if geo {
			y = -y
		}
		key := cell(row, idxGroup)
		i, ok := byGroup[key]
		if !ok {
			i = len(shapes)
			byGroup[key] = i
			shapes = append(shapes, Shape{ID: key, Label: cell(row, idxLabel), Color: cell(row, idxColor)})
		}
		shapes[i].Points = append(shapes[i].Points, Point{X: x, Y: y})
	}
	if len(shapes) == 0 {
		return nil, errors.New("csv: no rows")
	}
	return shapes, nil
}

func pick(cur, i int) int {
	if cur == -1 {
		return i
	}
	return cur
}
