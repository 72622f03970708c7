package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc/sleigh/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 6, Title: "Trash Compactor", Solve: solveDay06})
}

// problem is one column group of the worksheet
type problem struct {
	op      byte
	numbers []int64
}

func (p problem) eval() int64 {
	acc := p.numbers[0]
	for _, n := range p.numbers[1:] {
		if p.op == '*' {
			acc *= n
		} else {
			acc += n
		}
	}
	return acc
}

// worksheet is the input padded into a rectangle; the last row holds operators
type worksheet struct {
	rows  []string
	width int
}

func parseWorksheet(input string) (*worksheet, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return nil, fmt.Errorf("worksheet needs number rows and an operator row, got %d lines", len(lines))
	}
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l + strings.Repeat(" ", width-len(l))
	}
	return &worksheet{rows: rows, width: width}, nil
}

func (w *worksheet) blankColumn(c int) bool {
	for _, r := range w.rows {
		if r[c] != ' ' {
			return false
		}
	}
	return true
}

// spans returns [start, end) column ranges of each problem
func (w *worksheet) spans() [][2]int {
	var spans [][2]int
	start := -1
	for c := 0; c <= w.width; c++ {
		if c < w.width && !w.blankColumn(c) {
			if start < 0 {
				start = c
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, [2]int{start, c})
			start = -1
		}
	}
	return spans
}

func (w *worksheet) operator(span [2]int) (byte, error) {
	ops := strings.TrimSpace(w.rows[len(w.rows)-1][span[0]:span[1]])
	if ops != "+" && ops != "*" {
		return 0, fmt.Errorf("columns %d-%d: operator %q is not + or *", span[0]+1, span[1], ops)
	}
	return ops[0], nil
}

// rowProblems reads each number horizontally within its span
func (w *worksheet) rowProblems() ([]problem, error) {
	var problems []problem
	for _, span := range w.spans() {
		op, err := w.operator(span)
		if err != nil {
			return nil, err
		}
		p := problem{op: op}
		for i, r := range w.rows[:len(w.rows)-1] {
			field := strings.TrimSpace(r[span[0]:span[1]])
			if field == "" {
				continue
			}
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, puzzle.Errorf(i, r, "number %q: %w", field, err)
			}
			p.numbers = append(p.numbers, n)
		}
		if len(p.numbers) == 0 {
			return nil, fmt.Errorf("columns %d-%d: no numbers", span[0]+1, span[1])
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// columnProblems reads each number vertically, most significant digit at
// the top, one number per column from right to left
func (w *worksheet) columnProblems() ([]problem, error) {
	var problems []problem
	for _, span := range w.spans() {
		op, err := w.operator(span)
		if err != nil {
			return nil, err
		}
		p := problem{op: op}
		for c := span[1] - 1; c >= span[0]; c-- {
			var n int64
			digits := 0
			for _, r := range w.rows[:len(w.rows)-1] {
				ch := r[c]
				if ch == ' ' {
					continue
				}
				if ch < '0' || ch > '9' {
					return nil, fmt.Errorf("column %d: unexpected %q", c+1, ch)
				}
				n = n*10 + int64(ch-'0')
				digits++
			}
			if digits > 0 {
				p.numbers = append(p.numbers, n)
			}
		}
		if len(p.numbers) == 0 {
			return nil, fmt.Errorf("columns %d-%d: no numbers", span[0]+1, span[1])
		}
		problems = append(problems, p)
	}
	return problems, nil
}

func grandTotal(problems []problem) int64 {
	var total int64
	for _, p := range problems {
		total += p.eval()
	}
	return total
}

func solveDay06(input string, _ puzzle.Options) (puzzle.Solution, error) {
	w, err := parseWorksheet(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing worksheet: %w", err)
	}
	byRow, err := w.rowProblems()
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("reading rows: %w", err)
	}
	byColumn, err := w.columnProblems()
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("reading columns: %w", err)
	}
	return puzzle.Solution{Part1: puzzle.Int(grandTotal(byRow)), Part2: puzzle.Int(grandTotal(byColumn))}, nil
}
