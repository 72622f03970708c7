package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc/sleigh/internal/puzzle"
)

const (
	dialSize  = 100
	dialStart = 50
)

type rotation struct {
	left  bool
	steps int64
}

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 1, Title: "Secret Entrance", Solve: solveDay01})
}

func parseRotations(input string) ([]rotation, error) {
	var rotations []rotation
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r rotation
		switch line[0] {
		case 'L':
			r.left = true
		case 'R':
		default:
			return nil, puzzle.Errorf(i, line, "direction must be L or R")
		}
		steps, err := strconv.ParseInt(line[1:], 10, 64)
		if err != nil || steps < 0 {
			return nil, puzzle.Errorf(i, line, "invalid step count")
		}
		r.steps = steps
		rotations = append(rotations, r)
	}
	return rotations, nil
}

func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// turn applies r to dial and returns the new position with the number of
// clicks that landed on 0 along the way
func turn(dial int64, r rotation) (int64, int64) {
	var toZero int64
	if r.left {
		toZero = dial
	} else {
		toZero = mod(dialSize-dial, dialSize)
	}

	var zeros int64
	switch {
	case toZero == 0:
		zeros = r.steps / dialSize
	case toZero <= r.steps:
		zeros = (r.steps-toZero)/dialSize + 1
	}

	delta := r.steps
	if r.left {
		delta = -delta
	}
	return mod(dial+delta, dialSize), zeros
}

func solveDay01(input string, _ puzzle.Options) (puzzle.Solution, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing rotations: %w", err)
	}

	dial := int64(dialStart)
	var landed, passed int64
	for _, r := range rotations {
		var zeros int64
		dial, zeros = turn(dial, r)
		passed += zeros
		if dial == 0 {
			landed++
		}
	}
	return puzzle.Solution{Part1: puzzle.Int(landed), Part2: puzzle.Int(passed)}, nil
}
