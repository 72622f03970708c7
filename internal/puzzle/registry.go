package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDay is returned by Lookup for a day with no registered solver
var ErrUnknownDay = errors.New("no solver registered")

var (
	mu       sync.RWMutex
	registry = make(map[int]Puzzle)
)

// Register makes a puzzle available by day. Called from init functions;
// it panics on an invalid day, a nil solver or a duplicate registration.
func Register(p Puzzle) {
	mu.Lock()
	defer mu.Unlock()
	if p.Day < 1 || p.Day > 25 {
		panic(fmt.Sprintf("puzzle: invalid day %d", p.Day))
	}
	if p.Solve == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without a solver", p.Day))
	}
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle registered for day
func Lookup(day int) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return p, nil
}

// All returns every registered puzzle ordered by day
func All() []Puzzle {
	mu.RLock()
	defer mu.RUnlock()
	puzzles := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool { return puzzles[i].Day < puzzles[j].Day })
	return puzzles
}
