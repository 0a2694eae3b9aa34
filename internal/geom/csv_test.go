package geom

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadCSV_Grouped(t *testing.T) {
	p := writeFile(t, "shapes.csv", "shape,x,y,label,color\n"+
		"a,0,0,first,#F00\n"+
		"b,5,5,second,\n"+
		"a,10,0,,\n"+
		"a,10,10,,\n")
	got, err := LoadCSV(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d shapes", len(got))
	}
	a := got[0]
	if a.ID != "a" || a.Label != "first" || a.Color != "#F00" || len(a.Points) != 3 {
		t.Fatalf("a = %+v", a)
	}
	if a.Points[2] != (Point{10, 10}) {
		t.Fatalf("x/y columns should not be flipped: %+v", a.Points[2])
	}
	if got[1].ID != "b" || len(got[1].Points) != 1 {
		t.Fatalf("b = %+v", got[1])
	}
}

func TestLoadCSV_LatLonSingleStroke(t *testing.T) {
	p := writeFile(t, "track.csv", "Latitude, Longitude\n10,20\n11,21\n")
	got, err := LoadCSV(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].Points) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got[0].Points[0] != (Point{X: 20, Y: -10}) {
		t.Fatalf("lat/lon mapping = %+v", got[0].Points[0])
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"no columns":  "a,b\n1,2\n",
		"bad number":  "x,y\n1,z\n",
		"header only": "x,y\n",
		"nan":         "x,y\nNaN,2\n",
	}
	for name, content := range cases {
		p := writeFile(t, "f.csv", content)
		if _, err := LoadCSV(p); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
