package circuit

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func TestSquaredDistance(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: -2, Z: 3}
	if d := SquaredDistance(a, b); d != 25 {
		t.Errorf("SquaredDistance = %d, want 25", d)
	}
	if SquaredDistance(a, b) != SquaredDistance(b, a) {
		t.Error("SquaredDistance should be symmetric")
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{1, 2, 3}, Point{1, 2, 3}, 0},
		{Point{0, 9, 9}, Point{1, 0, 0}, -1},
		{Point{1, 3, 0}, Point{1, 2, 9}, 1},
		{Point{1, 2, -1}, Point{1, 2, 0}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 162,817,-812 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (Point{X: 162, Y: 817, Z: -812}) {
		t.Errorf("ParsePoint = %v", p)
	}

	for _, bad := range []string{"1,2", "1,2,3,4", "a,2,3", ""} {
		if _, err := ParsePoint(bad); err == nil {
			t.Errorf("ParsePoint(%q) should fail", bad)
		}
	}
}

func TestParsePoints_ReportsLine(t *testing.T) {
	_, err := ParsePoints([]string{"1,2,3", "", "4,5"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.HasPrefix(got, "line 3:") {
		t.Errorf("error should name line 3, got %q", got)
	}
}

func TestBuildDistanceIndex_TooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {{X: 1}}} {
		if _, err := BuildDistanceIndex(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("BuildDistanceIndex(%v) err = %v, want ErrTooFewPoints", pts, err)
		}
	}
}

func TestBuildDistanceIndex_TwoPoints(t *testing.T) {
	edges, err := BuildDistanceIndex([]Point{{X: 0}, {X: 3, Y: 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0] != (Edge{I: 0, J: 1, Weight: 25}) {
		t.Errorf("edge = %+v", edges[0])
	}
}

func TestBuildDistanceIndex_Totality(t *testing.T) {
	points := examplePoints(t)
	edges, err := BuildDistanceIndex(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(points)
	if want := combin.Binomial(n, 2); len(edges) != want {
		t.Fatalf("expected %d edges, got %d", want, len(edges))
	}

	seen := make(map[[2]int]bool, len(edges))
	for k, e := range edges {
		if e.I >= e.J {
			t.Errorf("edge %d not canonical: %+v", k, e)
		}
		key := [2]int{e.I, e.J}
		if seen[key] {
			t.Errorf("duplicate pair %v", key)
		}
		seen[key] = true
		if e.Weight != SquaredDistance(points[e.I], points[e.J]) {
			t.Errorf("edge %+v has wrong weight", e)
		}
		if k > 0 && edgeLess(e, edges[k-1]) {
			t.Errorf("edges out of order at %d: %+v before %+v", k, edges[k-1], e)
		}
	}
}

func TestBuildDistanceIndex_TiesBreakByIndex(t *testing.T) {
	// Unit square: four sides of weight 1, two diagonals of weight 2.
	points := []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	edges, err := BuildDistanceIndex(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Edge{
		{0, 1, 1}, {0, 3, 1}, {1, 2, 1}, {2, 3, 1},
		{0, 2, 2}, {1, 3, 2},
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edges[%d] = %+v, want %+v", i, edges[i], want[i])
		}
	}
}
