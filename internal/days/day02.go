package days

import (
	"fmt"
	"strings"

	"aoc/sleigh/internal/interval"
	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 2, Title: "Gift Shop", Solve: solveDay02})
}

func parseIDRanges(input string) ([]interval.Range, error) {
	var ranges []interval.Range
	for _, field := range strings.Split(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		r, err := interval.Parse(field)
		if err != nil {
			return nil, err
		}
		if r.Start < 0 {
			return nil, fmt.Errorf("range %q: ids must not be negative", field)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// repeatMultiplier returns the factor that repeats an n-digit block times
// times, e.g. (2, 3) -> 10101
func repeatMultiplier(n, times int) int64 {
	m := int64(0)
	shift := interval.Pow10(n)
	for i := 0; i < times; i++ {
		m = m*shift + 1
	}
	return m
}

// repeatedIDs calls fn for each id in r (all members share one digit count)
// formed by a block repeated exactly times times
func repeatedIDs(r interval.Range, times int, fn func(id int64)) {
	digits := interval.Digits(r.Start)
	if digits%times != 0 {
		return
	}
	block := digits / times
	mult := repeatMultiplier(block, times)

	lo := (r.Start + mult - 1) / mult
	if smallest := interval.Pow10(block - 1); lo < smallest {
		lo = smallest
	}
	hi := r.End / mult
	if largest := interval.Pow10(block) - 1; hi > largest {
		hi = largest
	}
	for seed := lo; seed <= hi; seed++ {
		fn(seed * mult)
	}
}

func solveDay02(input string, _ puzzle.Options) (puzzle.Solution, error) {
	ranges, err := parseIDRanges(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing id ranges: %w", err)
	}

	var twice, repeated int64
	for _, r := range ranges {
		for _, sub := range interval.SplitByDigits(r) {
			repeatedIDs(sub, 2, func(id int64) { twice += id })

			seen := make(map[int64]bool)
			for times := 2; times <= interval.Digits(sub.Start); times++ {
				repeatedIDs(sub, times, func(id int64) {
					if !seen[id] {
						seen[id] = true
						repeated += id
					}
				})
			}
		}
	}
	return puzzle.Solution{Part1: puzzle.Int(twice), Part2: puzzle.Int(repeated)}, nil
}
