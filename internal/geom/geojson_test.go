package geom

import (
	"os"
	"path/filepath"
	"testing"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "lake", "properties": {"name": "Lake", "color": "#38BDF8"},
     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [10, 0], [10, 5], [0, 0]]]}},
    {"type": "Feature", "id": 7, "properties": {"label": "Path"},
     "geometry": {"type": "LineString", "coordinates": [[1, 2], [3, 4]]}},
    {"type": "Feature", "id": "isles", "properties": {},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[0, 0], [1, 0], [1, 1], [0, 0]]],
       [[[5, 5], [6, 5], [6, 6], [5, 5]]]
     ]}},
    {"type": "Feature", "properties": null, "geometry": null}
  ]
}`

func TestParseGeoJSON_FeatureCollection(t *testing.T) {
	got, err := ParseGeoJSON([]byte(featureCollection))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d shapes, want 4", len(got))
	}
	lake := got[0]
	if lake.ID != "lake" || lake.Label != "Lake" || lake.Color != "#38BDF8" || !lake.Closed {
		t.Fatalf("lake = %+v", lake)
	}
	if len(lake.Points) != 3 {
		t.Fatalf("closing vertex should be dropped: %+v", lake.Points)
	}
	if lake.Points[2] != (Point{X: 10, Y: -5}) {
		t.Fatalf("latitude should be negated: %+v", lake.Points[2])
	}
	if got[1].ID != "7" || got[1].Label != "Path" || got[1].Closed {
		t.Fatalf("path = %+v", got[1])
	}
	if got[2].ID != "isles" || got[3].ID != "isles-2" {
		t.Fatalf("split feature ids = %q, %q", got[2].ID, got[3].ID)
	}
}

func TestParseGeoJSON_BareGeometry(t *testing.T) {
	got, err := ParseGeoJSON([]byte(`{"type":"GeometryCollection","geometries":[
		{"type":"Point","coordinates":[1,1]},
		{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d shapes", len(got))
	}
}

func TestParseGeoJSON_Errors(t *testing.T) {
	cases := map[string]string{
		"not json":     `{`,
		"missing type": `{"features": []}`,
		"no geometry":  `{"type":"FeatureCollection","features":[]}`,
		"unsupported":  `{"type":"Circle","coordinates":[0,0]}`,
		"short point":  `{"type":"Point","coordinates":[1]}`,
	}
	for name, in := range cases {
		if _, err := ParseGeoJSON([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadGeoJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shapes.geojson")
	if err := os.WriteFile(p, []byte(featureCollection), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadGeoJSON(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d shapes", len(got))
	}
	if _, err := LoadGeoJSON(filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
