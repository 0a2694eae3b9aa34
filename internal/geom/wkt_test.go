package geom

import (
	"strings"
	"testing"
)

func TestParseWKT(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		shapes int
		closed bool
		points int
	}{
		{"point", "POINT (1 2)", 1, false, 1},
		{"multipoint bare", "MULTIPOINT (1 2, 3 4, 5 6)", 1, false, 3},
		{"multipoint nested", "MULTIPOINT ((1 2), (3 4))", 1, false, 2},
		{"linestring", "linestring(0 0, 10 10, 20 0)", 1, false, 3},
		{"multilinestring", "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))", 2, false, 2},
		{"polygon drops closing vertex", "POLYGON ((0 0, 100 0, 100 50, 0 50, 0 0))", 1, true, 4},
		{"polygon hole ignored", "POLYGON ((0 0, 10 0, 10 10, 0 0), (2 2, 3 2, 3 3, 2 2))", 1, true, 3},
		{"multipolygon", "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))", 2, true, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseWKT(c.in)
			if err != nil {
				t.Fatalf("ParseWKT: %v", err)
			}
			if len(got) != c.shapes {
				t.Fatalf("got %d shapes, want %d", len(got), c.shapes)
			}
			if got[0].Closed != c.closed || len(got[0].Points) != c.points {
				t.Fatalf("first shape = %+v", got[0])
			}
		})
	}
}

func TestParseWKT_MultipleLines(t *testing.T) {
	got, err := ParseWKT("POINT (1 2)\n\n  LINESTRING (0 0, 5 5)\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d shapes", len(got))
	}
}

func TestParseWKT_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":        "   ",
		"no parens":    "POINT 1 2",
		"unsupported":  "CIRCLE (1 2)",
		"bad number":   "POINT (1 x)",
		"one ordinate": "LINESTRING (1, 2 3)",
		"nan":          "POINT (NaN 1)",
		"infinite":     "LINESTRING (0 0, 1 -Inf)",
		"empty kind":   "CIRCLE EMPTY",
	}
	for name, in := range cases {
		if _, err := ParseWKT(in); err == nil {
			t.Errorf("%s: expected error for %q", name, in)
		}
	}
	_, err := ParseWKT("POINT (1 2)\nPOINT (x 2)")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestFormatWKT(t *testing.T) {
	cases := []struct {
		s    Shape
		want string
	}{
		{Shape{}, "POINT EMPTY"},
		{Shape{Points: []Point{{1.5, -2}}}, "POINT (1.5 -2)"},
		{Shape{Points: []Point{{0, 0}, {10, 5}}}, "LINESTRING (0 0, 10 5)"},
		{rect(), "POLYGON ((0 0, 100 0, 100 50, 0 50, 0 0))"},
	}
	for _, c := range cases {
		if got := FormatWKT(c.s); got != c.want {
			t.Errorf("FormatWKT = %q, want %q", got, c.want)
		}
	}
	back, err := ParseWKT(FormatWKT(rect()))
	if err != nil {
		t.Fatal(err)
	}
	if len(back[0].Points) != 4 || !back[0].Closed {
		t.Fatalf("round trip lost shape: %+v", back[0])
	}
}

func TestParseWKT_NotFinite(t *testing.T) {
	_, err := ParseWKT("POLYGON ((0 0, +Inf 0, 1 1, 0 0))")
	if err == nil || !strings.Contains(err.Error(), "not finite") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseWKT_Empty(t *testing.T) {
	got, err := ParseWKT(FormatWKT(Shape{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].Points) != 0 {
		t.Fatalf("got %+v", got)
	}
	got, err = ParseWKT("polygon empty")
	if err != nil || len(got) != 1 || !got[0].Closed {
		t.Fatalf("polygon empty: %+v, %v", got, err)
	}
}
