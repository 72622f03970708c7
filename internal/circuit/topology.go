package circuit

import "sort"

// SizeBucket is one bucket in the circuit size histogram
type SizeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ComponentReport describes the circuits left after a bounded number of connections
type ComponentReport struct {
	TotalJunctions int          `json:"total_junctions"`
	Connections    int          `json:"connections"`
	Effective      int          `json:"effective_connections"`
	NumCircuits    int          `json:"num_circuits"`
	Largest        int          `json:"largest"`
	Smallest       int          `json:"smallest"`
	SingletonCount int          `json:"singleton_count"`
	SizeHistogram  []SizeBucket `json:"size_histogram"`
	TopSizes       []int        `json:"top_sizes"`
	TopProduct     int64        `json:"top_product"`
}

// BottleneckReport describes the edge that joins the final two circuits
type BottleneckReport struct {
	Found      bool  `json:"found"`
	A          Point `json:"a"`
	B          Point `json:"b"`
	Weight     int64 `json:"weight"`
	EdgeRank   int   `json:"edge_rank"`
	MergeValue int64 `json:"merge_value"`
}

// AnalysisReport is the full clustering analysis
type AnalysisReport struct {
	Connectedness float64           `json:"connectedness"`
	TotalEdges    int               `json:"total_edges"`
	Components    *ComponentReport  `json:"components"`
	Bottleneck    *BottleneckReport `json:"bottleneck"`
}

// AnalyzerConfig holds analysis parameters
type AnalyzerConfig struct {
	Connections int
	TopN        int
}

// DefaultConfig returns the puzzle defaults
func DefaultConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		Connections: 1000,
		TopN:        10,
	}
}

// Analyze runs both clustering queries and summarizes the circuits they produce
func Analyze(points []Point, edges []Edge, config *AnalyzerConfig) (*AnalysisReport, error) {
	components, err := ComputeComponents(points, edges, config.Connections, config.TopN)
	if err != nil {
		return nil, err
	}

	bottleneck := &BottleneckReport{}
	if b, ok := FindBottleneck(points, edges); ok {
		bottleneck = &BottleneckReport{
			Found:      true,
			A:          points[b.Edge.I],
			B:          points[b.Edge.J],
			Weight:     b.Edge.Weight,
			EdgeRank:   b.Rank,
			MergeValue: MergeValue(points, b.Edge),
		}
	}

	var connectedness float64
	if components.TotalJunctions > 0 {
		connectedness = float64(components.Largest) / float64(components.TotalJunctions)
	}

	return &AnalysisReport{
		Connectedness: connectedness,
		TotalEdges:    len(edges),
		Components:    components,
		Bottleneck:    bottleneck,
	}, nil
}

// ComputeComponents connects the first k edges and reports circuit sizes
func ComputeComponents(points []Point, edges []Edge, k, topN int) (*ComponentReport, error) {
	total := len(points)
	if total == 0 {
		return &ComponentReport{SizeHistogram: defaultHistogram()}, nil
	}

	ds, err := Connect(points, edges, k)
	if err != nil {
		return nil, err
	}
	consumed := k
	if consumed > len(edges) {
		consumed = len(edges)
	}

	sizes := ds.Sizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	singletons := 0
	histogram := defaultHistogram()
	for _, s := range sizes {
		if s == 1 {
			singletons++
		}
		histogram[sizeBucket(s)].Count++
	}

	top := sizes
	if topN < 0 {
		topN = 0
	}
	if len(top) > topN {
		top = top[:topN]
	}

	return &ComponentReport{
		TotalJunctions: total,
		Connections:    consumed,
		Effective:      total - ds.Count(),
		NumCircuits:    ds.Count(),
		Largest:        sizes[0],
		Smallest:       sizes[len(sizes)-1],
		SingletonCount: singletons,
		SizeHistogram:  histogram,
		TopSizes:       top,
		TopProduct:     productOfLargest(sizes, TopComponents),
	}, nil
}

func defaultHistogram() []SizeBucket {
	return []SizeBucket{
		{Label: "1"}, {Label: "2-3"}, {Label: "4-7"},
		{Label: "8-15"}, {Label: "16-31"}, {Label: "32+"},
	}
}

func sizeBucket(size int) int {
	switch {
	case size <= 1:
		return 0
	case size <= 3:
		return 1
	case size <= 7:
		return 2
	case size <= 15:
		return 3
	case size <= 31:
		return 4
	default:
		return 5
	}
}
