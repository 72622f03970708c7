package days

import (
	"errors"
	"fmt"

	"aoc/sleigh/internal/grid"
	"aoc/sleigh/internal/puzzle"
)

const (
	beamSource = 'S'
	splitter   = '^'
	emptySpace = '.'
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 7, Title: "Laboratories", Solve: solveDay07})
}

// traceBeams sends a beam down from the source. Each splitter it reaches
// replaces the beam with two, one on each side. Returns the number of
// splitters hit and the number of distinct beam timelines leaving the bottom.
func traceBeams(g *grid.Grid) (int64, int64, error) {
	src, ok := g.Find(beamSource)
	if !ok {
		return 0, 0, errors.New("no beam source 'S' in manifold")
	}

	timelines := make([]int64, g.Width)
	timelines[src.Col] = 1
	var splits int64

	for r := src.Row + 1; r < g.Height; r++ {
		next := make([]int64, g.Width)
		for c, cell := range g.Row(r) {
			n := timelines[c]
			switch cell {
			case emptySpace, beamSource:
				next[c] += n
			case splitter:
				if n == 0 {
					continue
				}
				splits++
				if c > 0 {
					next[c-1] += n
				}
				if c < g.Width-1 {
					next[c+1] += n
				}
			default:
				return 0, 0, fmt.Errorf("row %d column %d: unexpected %q", r+1, c+1, cell)
			}
		}
		timelines = next
	}

	var total int64
	for _, n := range timelines {
		total += n
	}
	return splits, total, nil
}

func solveDay07(input string, _ puzzle.Options) (puzzle.Solution, error) {
	g, err := grid.Parse(puzzle.Lines(input))
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing manifold: %w", err)
	}
	splits, timelines, err := traceBeams(g)
	if err != nil {
		return puzzle.Solution{}, err
	}
	return puzzle.Solution{Part1: puzzle.Int(splits), Part2: puzzle.Int(timelines)}, nil
}
