package grid

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when parsing input with no rows
var ErrEmpty = errors.New("grid: no rows")

// Point is a cell position
type Point struct {
	Row, Col int
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Neighbors8 are the offsets of the eight surrounding cells, row-major
var Neighbors8 = []Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rectangular byte grid stored row-major
type Grid struct {
	Width  int
	Height int
	cells  []byte
}

// Parse builds a Grid from lines of equal length
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	width := len(lines[0])
	cells := make([]byte, 0, width*len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("grid: row %d has width %d, want %d", i+1, len(line), width)
		}
		cells = append(cells, line...)
	}
	return &Grid{Width: width, Height: len(lines), cells: cells}, nil
}

// In reports whether p lies inside the grid
func (g *Grid) In(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid) At(p Point) byte {
	return g.cells[p.Row*g.Width+p.Col]
}

// Set overwrites the cell at p. p must be inside the grid.
func (g *Grid) Set(p Point, v byte) {
	g.cells[p.Row*g.Width+p.Col] = v
}

// Row returns row r. The slice aliases the grid.
func (g *Grid) Row(r int) []byte {
	return g.cells[r*g.Width : (r+1)*g.Width]
}

// CountNeighbors counts cells around p, among the eight neighbours, equal to v
func (g *Grid) CountNeighbors(p Point, v byte) int {
	n := 0
	for _, d := range Neighbors8 {
		q := p.Add(d)
		if g.In(q) && g.At(q) == v {
			n++
		}
	}
	return n
}

// Find returns the first cell equal to v in row-major order
func (g *Grid) Find(v byte) (Point, bool) {
	for i, c := range g.cells {
		if c == v {
			return Point{Row: i / g.Width, Col: i % g.Width}, true
		}
	}
	return Point{}, false
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(p Point, v byte)) {
	for i, c := range g.cells {
		fn(Point{Row: i / g.Width, Col: i % g.Width}, c)
	}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, cells: append([]byte(nil), g.cells...)}
}

func (g *Grid) String() string {
	out := make([]byte, 0, len(g.cells)+g.Height)
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			out = append(out, '\n')
		}
		out = append(out, g.Row(r)...)
	}
	return string(out)
}
