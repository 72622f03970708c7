package circuit

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrTooFewPoints is returned when a distance index is requested for fewer than two junctions
var ErrTooFewPoints = errors.New("circuit: at least 2 junctions are required")

// Edge is a candidate connection between two junctions, identified by their
// index in the point slice. I < J always holds, so (a,b) and (b,a) share one Edge.
type Edge struct {
	I      int   `json:"i"`
	J      int   `json:"j"`
	Weight int64 `json:"weight"` // squared euclidean distance
}

func newEdge(a, b int, weight int64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{I: a, J: b, Weight: weight}
}

// BuildDistanceIndex returns every unordered pair of junctions exactly once,
// sorted by ascending squared distance. Equal weights are ordered by (I, J)
// so repeated runs over the same input always report the same edges.
func BuildDistanceIndex(points []Point) ([]Edge, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	edges := make([]Edge, 0, combin.Binomial(n, 2))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, newEdge(i, j, SquaredDistance(points[i], points[j])))
		}
	}

	sort.Slice(edges, func(a, b int) bool {
		return edgeLess(edges[a], edges[b])
	})
	return edges, nil
}

func edgeLess(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}
