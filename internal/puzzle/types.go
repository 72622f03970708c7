package puzzle

import (
	"encoding/json"
	"strconv"
)

// Answer is a numeric puzzle answer that may be absent
type Answer struct {
	value int64
	ok    bool
}

// Int wraps a computed answer
func Int(v int64) Answer { return Answer{value: v, ok: true} }

// None is the absent answer
func None() Answer { return Answer{} }

// Value returns the answer and whether one exists
func (a Answer) Value() (int64, bool) { return a.value, a.ok }

func (a Answer) String() string {
	if !a.ok {
		return "-"
	}
	return strconv.FormatInt(a.value, 10)
}

// MarshalJSON encodes an absent answer as null
func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.ok {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// Solution holds both parts of a day's answer
type Solution struct {
	Part1 Answer `json:"part1"`
	Part2 Answer `json:"part2"`
}

// Options carries the knobs a solver may read
type Options struct {
	// Connections bounds how many shortest edges the circuit query consumes
	Connections int
}

// DefaultOptions returns the values used for real puzzle inputs
func DefaultOptions() Options {
	return Options{Connections: 1000}
}

// Solver turns raw puzzle input into a Solution
type Solver func(input string, opts Options) (Solution, error)

// Puzzle is one registered day
type Puzzle struct {
	Day   int
	Title string
	Solve Solver
}
