package circuit

import (
	"errors"
	"sort"
)

// ErrNegativeConnections is returned when asked to make a negative number of connections
var ErrNegativeConnections = errors.New("circuit: connection count must not be negative")

// TopComponents is how many of the largest circuits TopSizeProduct multiplies
const TopComponents = 3

// Connect returns a fresh DisjointSet after unioning the first k edges in
// order, whether or not each union joins anything new. k beyond len(edges)
// consumes every edge.
func Connect(points []Point, edges []Edge, k int) (*DisjointSet, error) {
	if k < 0 {
		return nil, ErrNegativeConnections
	}
	if k > len(edges) {
		k = len(edges)
	}
	ds := NewDisjointSet(len(points))
	for _, e := range edges[:k] {
		ds.Union(e.I, e.J)
	}
	return ds, nil
}

// TopSizeProduct multiplies the sizes of the three largest circuits after the
// k shortest connections are made. With fewer than three circuits the
// missing terms count as 1.
func TopSizeProduct(points []Point, edges []Edge, k int) (int64, error) {
	ds, err := Connect(points, edges, k)
	if err != nil {
		return 0, err
	}
	return productOfLargest(ds.Sizes(), TopComponents), nil
}

func productOfLargest(sizes []int, n int) int64 {
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	product := int64(1)
	for _, s := range sorted {
		product *= int64(s)
	}
	return product
}

// Bottleneck is the edge that completes connectivity together with its
// position in the sorted edge list
type Bottleneck struct {
	Edge Edge
	Rank int
}

// FindBottleneck processes edges in order on a fresh DisjointSet and returns
// the edge whose union first leaves a single circuit. Returns false if the
// edges never connect every junction, including the case of fewer than two
// junctions.
func FindBottleneck(points []Point, edges []Edge) (Bottleneck, bool) {
	circuits := len(points)
	if circuits < 2 {
		return Bottleneck{}, false
	}
	ds := NewDisjointSet(circuits)

	for rank, e := range edges {
		rootI := ds.Find(e.I)
		rootJ := ds.Find(e.J)
		if rootI == rootJ {
			continue
		}
		circuits--
		ds.Union(rootI, rootJ)
		if circuits == 1 {
			return Bottleneck{Edge: e, Rank: rank}, true
		}
	}
	return Bottleneck{}, false
}

// BottleneckEdge returns the edge that completes connectivity
func BottleneckEdge(points []Point, edges []Edge) (Edge, bool) {
	b, ok := FindBottleneck(points, edges)
	return b.Edge, ok
}

// MergeValue combines the endpoints of an edge: the product of their X coordinates
func MergeValue(points []Point, e Edge) int64 {
	return points[e.I].X * points[e.J].X
}

// BottleneckMergeValue returns MergeValue of the edge that completes
// connectivity, or false if there is none
func BottleneckMergeValue(points []Point, edges []Edge) (int64, bool) {
	e, ok := BottleneckEdge(points, edges)
	if !ok {
		return 0, false
	}
	return MergeValue(points, e), true
}
