package days

import (
	"fmt"

	"aoc/sleigh/internal/circuit"
	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 8, Title: "Playground", Solve: solveDay08})
}

// LoadJunctions parses day 8 input and builds its distance index
func LoadJunctions(input string) ([]circuit.Point, []circuit.Edge, error) {
	points, err := circuit.ParsePoints(puzzle.Lines(input))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing junctions: %w", err)
	}
	edges, err := circuit.BuildDistanceIndex(points)
	if err != nil {
		return nil, nil, fmt.Errorf("indexing %d junctions: %w", len(points), err)
	}
	return points, edges, nil
}

func solveDay08(input string, opts puzzle.Options) (puzzle.Solution, error) {
	points, edges, err := LoadJunctions(input)
	if err != nil {
		return puzzle.Solution{}, err
	}

	product, err := circuit.TopSizeProduct(points, edges, opts.Connections)
	if err != nil {
		return puzzle.Solution{}, err
	}

	last := puzzle.None()
	if v, ok := circuit.BottleneckMergeValue(points, edges); ok {
		last = puzzle.Int(v)
	}
	return puzzle.Solution{Part1: puzzle.Int(product), Part2: last}, nil
}
