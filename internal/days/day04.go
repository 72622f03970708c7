package days

import (
	"fmt"

	"aoc/sleigh/internal/grid"
	"aoc/sleigh/internal/puzzle"
)

const (
	paperRoll  = '@'
	emptyFloor = '.'
	// a forklift reaches a roll with fewer than this many rolls around it
	crowdedRolls = 4
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 4, Title: "Printing Department", Solve: solveDay04})
}

func accessibleRolls(g *grid.Grid) []grid.Point {
	var reachable []grid.Point
	g.Each(func(p grid.Point, v byte) {
		if v == paperRoll && g.CountNeighbors(p, paperRoll) < crowdedRolls {
			reachable = append(reachable, p)
		}
	})
	return reachable
}

func solveDay04(input string, _ puzzle.Options) (puzzle.Solution, error) {
	g, err := grid.Parse(puzzle.Lines(input))
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing floor: %w", err)
	}

	first := len(accessibleRolls(g))

	// Remove whole waves at once so each wave sees the floor as it was.
	floor := g.Clone()
	removed := 0
	for {
		wave := accessibleRolls(floor)
		if len(wave) == 0 {
			break
		}
		for _, p := range wave {
			floor.Set(p, emptyFloor)
		}
		removed += len(wave)
	}

	return puzzle.Solution{Part1: puzzle.Int(int64(first)), Part2: puzzle.Int(int64(removed))}, nil
}
