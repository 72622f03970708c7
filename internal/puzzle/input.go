package puzzle

import (
	"fmt"
	"strings"
)

// ParseError reports malformed puzzle input at a 1-based line
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError for line n (0-based index) of the input
func Errorf(n int, text, format string, args ...any) error {
	return &ParseError{Line: n + 1, Text: text, Err: fmt.Errorf(format, args...)}
}

// Lines splits input into lines with CRLF normalized and trailing blank lines dropped.
// Interior blank lines and leading/trailing spaces on a line are kept.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Blocks splits input into groups of lines separated by blank lines
func Blocks(input string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
