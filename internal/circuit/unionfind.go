package circuit

import (
	"fmt"
	"sort"
)

// DisjointSet implements union-find with path compression and union by rank
// over junction indices 0..n-1.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// NewDisjointSet creates a DisjointSet where each junction is its own component
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Len returns the number of junctions in the structure
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Count returns the number of live components
func (ds *DisjointSet) Count() int { return ds.count }

// Find returns the root of the component containing i, re-pointing every
// node on the path directly at the root. Panics if i is not a junction index.
func (ds *DisjointSet) Find(i int) int {
	if i < 0 || i >= len(ds.parent) {
		panic(fmt.Sprintf("circuit: junction index %d out of range [0, %d)", i, len(ds.parent)))
	}
	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[i] != root {
		i, ds.parent[i] = ds.parent[i], root
	}
	return root
}

// Union merges the components containing a and b. Returns true if they were separate.
func (ds *DisjointSet) Union(a, b int) bool {
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	if rootA == rootB {
		return false
	}

	rankA := ds.rank[rootA]
	rankB := ds.rank[rootB]

	if rankA < rankB {
		ds.parent[rootA] = rootB
		ds.size[rootB] += ds.size[rootA]
	} else if rankA > rankB {
		ds.parent[rootB] = rootA
		ds.size[rootA] += ds.size[rootB]
	} else {
		ds.parent[rootB] = rootA
		ds.size[rootA] += ds.size[rootB]
		ds.rank[rootA]++
	}
	ds.count--
	return true
}

// Connected reports whether a and b share a component
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Size returns the size of the component containing i
func (ds *DisjointSet) Size(i int) int {
	return ds.size[ds.Find(i)]
}

// Sizes returns one size per live component, in ascending root order
func (ds *DisjointSet) Sizes() []int {
	sizes := make([]int, 0, ds.count)
	for i, p := range ds.parent {
		if p == i {
			sizes = append(sizes, ds.size[i])
		}
	}
	return sizes
}

// Components returns every component as a sorted slice of junction indices,
// ordered by their smallest member
func (ds *DisjointSet) Components() [][]int {
	groups := make(map[int][]int, ds.count)
	for i := range ds.parent {
		root := ds.Find(i)
		groups[root] = append(groups[root], i)
	}
	result := make([][]int, 0, len(groups))
	for _, members := range groups {
		result = append(result, members)
	}
	sort.Slice(result, func(i, j int) bool { return result[i][0] < result[j][0] })
	return result
}
