package days

import (
	"fmt"
	"strings"

	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 3, Title: "Lobby", Solve: solveDay03})
}

func parseBanks(input string) ([][]byte, error) {
	var banks [][]byte
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bank := make([]byte, len(line))
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				return nil, puzzle.Errorf(i, line, "battery %d is not a digit", j)
			}
			bank[j] = line[j] - '0'
		}
		banks = append(banks, bank)
	}
	return banks, nil
}

// maxJoltage picks k batteries in order to form the largest k-digit number.
// A digit is dropped from the stack whenever a larger one follows and
// enough batteries remain to still fill k places.
func maxJoltage(bank []byte, k int) (int64, error) {
	if len(bank) < k {
		return 0, fmt.Errorf("bank of %d batteries cannot supply %d", len(bank), k)
	}
	drops := len(bank) - k
	stack := make([]byte, 0, len(bank))
	for _, b := range bank {
		for drops > 0 && len(stack) > 0 && stack[len(stack)-1] < b {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, b)
	}

	var v int64
	for _, d := range stack[:k] {
		v = v*10 + int64(d)
	}
	return v, nil
}

func solveDay03(input string, _ puzzle.Options) (puzzle.Solution, error) {
	banks, err := parseBanks(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing banks: %w", err)
	}

	var pair, dozen int64
	for i, bank := range banks {
		p, err := maxJoltage(bank, 2)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("bank %d: %w", i+1, err)
		}
		d, err := maxJoltage(bank, 12)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("bank %d: %w", i+1, err)
		}
		pair += p
		dozen += d
	}
	return puzzle.Solution{Part1: puzzle.Int(pair), Part2: puzzle.Int(dozen)}, nil
}
