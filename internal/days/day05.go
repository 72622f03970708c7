package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc/sleigh/internal/interval"
	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 5, Title: "Cafeteria", Solve: solveDay05})
}

func parseInventory(input string) ([]interval.Range, []int64, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("expected fresh ranges and ingredient ids separated by a blank line, got %d sections", len(blocks))
	}

	ranges := make([]interval.Range, 0, len(blocks[0]))
	for _, line := range blocks[0] {
		r, err := interval.Parse(line)
		if err != nil {
			return nil, nil, err
		}
		ranges = append(ranges, r)
	}

	ids := make([]int64, 0, len(blocks[1]))
	for i, line := range blocks[1] {
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, nil, puzzle.Errorf(len(blocks[0])+1+i, line, "ingredient id: %w", err)
		}
		ids = append(ids, id)
	}
	return ranges, ids, nil
}

func solveDay05(input string, _ puzzle.Options) (puzzle.Solution, error) {
	ranges, ids, err := parseInventory(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing inventory: %w", err)
	}

	merged := interval.Merge(ranges)

	var fresh int64
	for _, id := range ids {
		for _, r := range merged {
			if r.Contains(id) {
				fresh++
				break
			}
		}
	}

	var covered int64
	for _, r := range merged {
		covered += r.Len()
	}
	return puzzle.Solution{Part1: puzzle.Int(fresh), Part2: puzzle.Int(covered)}, nil
}
