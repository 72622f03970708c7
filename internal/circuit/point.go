package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a junction position in 3-D space
type Point struct {
	X, Y, Z int64
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Compare orders points by X, then Y, then Z. Returns -1, 0 or 1.
func (p Point) Compare(o Point) int {
	switch {
	case p.X != o.X:
		return cmpInt64(p.X, o.X)
	case p.Y != o.Y:
		return cmpInt64(p.Y, o.Y)
	default:
		return cmpInt64(p.Z, o.Z)
	}
}

func cmpInt64(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// SquaredDistance returns dx²+dy²+dz². The root is never taken, only the
// relative order of distances matters.
func SquaredDistance(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// ParsePoint parses "x,y,z"
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Point{}, fmt.Errorf("expected 3 coordinates, got %d in %q", len(parts), s)
	}
	var coords [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("coordinate %d of %q: %w", i, s, err)
		}
		coords[i] = v
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParsePoints parses one point per line, skipping blank lines.
// The returned slice keeps input order; indices into it identify junctions.
func ParsePoints(lines []string) ([]Point, error) {
	points := make([]Point, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		points = append(points, p)
	}
	return points, nil
}
