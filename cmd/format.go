package cmd

import (
	"encoding/json"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aoc/sleigh/internal/puzzle"
)

var printer = message.NewPrinter(language.English)

// formatAnswer renders an answer, grouping digits when pretty is set
func formatAnswer(a puzzle.Answer, pretty bool) string {
	v, ok := a.Value()
	if !ok || !pretty {
		return a.String()
	}
	return printer.Sprintf("%d", v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// dayResult is the JSON shape of one solved day
type dayResult struct {
	Day   int           `json:"day"`
	Title string        `json:"title"`
	Input string        `json:"input,omitempty"`
	Part1 puzzle.Answer `json:"part1"`
	Part2 puzzle.Answer `json:"part2"`
	Error string        `json:"error,omitempty"`
}
