package days

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 9, Title: "Movie Theater", Solve: solveDay09})
}

type tile struct {
	x, y int64
}

// rect is the axis-aligned box spanned by two red tiles, bounds inclusive
type rect struct {
	minX, minY, maxX, maxY int64
}

func spanning(a, b tile) rect {
	r := rect{minX: a.x, minY: a.y, maxX: b.x, maxY: b.y}
	if r.minX > r.maxX {
		r.minX, r.maxX = r.maxX, r.minX
	}
	if r.minY > r.maxY {
		r.minY, r.maxY = r.maxY, r.minY
	}
	return r
}

func (r rect) area() int64 {
	return (r.maxX - r.minX + 1) * (r.maxY - r.minY + 1)
}

// crossesInterior reports whether o overlaps the open interior of r
func (r rect) crossesInterior(o rect) bool {
	return r.minY < o.maxY && r.maxY > o.minY && r.minX < o.maxX && r.maxX > o.minX
}

func parseTiles(input string) ([]tile, error) {
	var tiles []tile
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, puzzle.Errorf(i, line, "expected x,y")
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
		if err != nil {
			return nil, puzzle.Errorf(i, line, "x: %w", err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
		if err != nil {
			return nil, puzzle.Errorf(i, line, "y: %w", err)
		}
		tiles = append(tiles, tile{x: x, y: y})
	}
	return tiles, nil
}

// candidates returns every rectangle spanned by two tiles, largest first
func candidates(tiles []tile) []rect {
	rects := make([]rect, 0, len(tiles)*(len(tiles)-1)/2)
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			rects = append(rects, spanning(tiles[i], tiles[j]))
		}
	}
	sort.SliceStable(rects, func(a, b int) bool { return rects[a].area() > rects[b].area() })
	return rects
}

// boundary returns the polygon sides joining consecutive red tiles,
// wrapping from the last back to the first
func boundary(tiles []tile) []rect {
	sides := make([]rect, 0, len(tiles))
	for i := range tiles {
		sides = append(sides, spanning(tiles[i], tiles[(i+1)%len(tiles)]))
	}
	return sides
}

func insideLoop(r rect, sides []rect) bool {
	for _, s := range sides {
		if r.crossesInterior(s) {
			return false
		}
	}
	return true
}

func solveDay09(input string, _ puzzle.Options) (puzzle.Solution, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing red tiles: %w", err)
	}
	if len(tiles) < 2 {
		return puzzle.Solution{}, errors.New("at least 2 red tiles are required")
	}

	rects := candidates(tiles)
	sides := boundary(tiles)

	enclosed := puzzle.None()
	for _, r := range rects {
		if insideLoop(r, sides) {
			enclosed = puzzle.Int(r.area())
			break
		}
	}
	return puzzle.Solution{Part1: puzzle.Int(rects[0].area()), Part2: enclosed}, nil
}
