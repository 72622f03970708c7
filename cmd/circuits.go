package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aoc/sleigh/internal/circuit"
	"aoc/sleigh/internal/days"
)

var (
	circuitsInput       string
	circuitsJSON        bool
	circuitsConnections int
	circuitsTopN        int
)

var circuitsCmd = &cobra.Command{
	Use:   "circuits",
	Short: "Analyze junction circuits: sizes, histogram, final bottleneck edge",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, path, err := ReadInput(8, circuitsInput)
		if err != nil {
			return err
		}
		logf("circuits", "Loading junctions from %s", path)

		points, edges, err := days.LoadJunctions(input)
		if err != nil {
			return err
		}
		logf("circuits", "Indexed %d junctions, %d edges", len(points), len(edges))

		config := &circuit.AnalyzerConfig{
			Connections: circuitsConnections,
			TopN:        circuitsTopN,
		}
		report, err := circuit.Analyze(points, edges, config)
		if err != nil {
			return err
		}

		if circuitsJSON {
			return writeJSON(os.Stdout, report)
		}

		printCircuitReport(report)
		return nil
	},
}

func init() {
	defaults := circuit.DefaultConfig()
	circuitsCmd.Flags().StringVar(&circuitsInput, "input", "", "Junction file (default: discovered day08.txt)")
	circuitsCmd.Flags().BoolVar(&circuitsJSON, "json", false, "Output as JSON")
	circuitsCmd.Flags().IntVar(&circuitsConnections, "connections", defaults.Connections, "Shortest connections to make")
	circuitsCmd.Flags().IntVar(&circuitsTopN, "top-n", defaults.TopN, "Number of largest circuits to list")
	rootCmd.AddCommand(circuitsCmd)
}

func connectednessBar(fraction float64) string {
	barLen := int(fraction * 20)
	if barLen > 20 {
		barLen = 20
	}
	if barLen < 0 {
		barLen = 0
	}
	return strings.Repeat("█", barLen) + strings.Repeat("░", 20-barLen)
}

func printCircuitReport(report *circuit.AnalysisReport) {
	fmt.Printf("\n  Largest circuit: %.0f%% of junctions  [%s]\n\n",
		report.Connectedness*100, connectednessBar(report.Connectedness))

	c := report.Components
	fmt.Println("  CIRCUITS")
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Junctions: %d  Edges: %d  Connections: %d", c.TotalJunctions, report.TotalEdges, c.Effective)
	if c.Effective != c.Connections {
		fmt.Printf(" (of %d requested)", c.Connections)
	}
	fmt.Println()
	fmt.Printf("  Circuits: %d  Largest: %d  Smallest: %d  Singletons: %d\n",
		c.NumCircuits, c.Largest, c.Smallest, c.SingletonCount)
	fmt.Printf("  Product of %d largest: %d\n", circuit.TopComponents, c.TopProduct)

	fmt.Println("\n  Size distribution:")
	for _, b := range c.SizeHistogram {
		if b.Count > 0 {
			barWidth := int(math.Log2(float64(b.Count))) + 2
			fmt.Printf("    %5s: %4d  %s\n", b.Label, b.Count, strings.Repeat("=", barWidth))
		}
	}

	if len(c.TopSizes) > 0 {
		sizes := make([]string, len(c.TopSizes))
		for i, s := range c.TopSizes {
			sizes[i] = fmt.Sprint(s)
		}
		fmt.Printf("\n  Largest circuits: %s\n", strings.Join(sizes, ", "))
	}

	b := report.Bottleneck
	fmt.Println("\n  BOTTLENECK")
	fmt.Println("  ────────────────────────────────────────")
	if !b.Found {
		fmt.Println("  Junctions never join into a single circuit.")
		fmt.Println()
		return
	}
	fmt.Printf("  Final edge: %s -> %s\n", b.A, b.B)
	fmt.Printf("  Squared distance: %d  Edge rank: %d\n", b.Weight, b.EdgeRank)
	fmt.Printf("  X product: %d\n\n", b.MergeValue)
}
