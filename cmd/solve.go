package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"aoc/sleigh/internal/puzzle"
)

var (
	solveInput       string
	solveJSON        bool
	solvePretty      bool
	solveConnections int
)

var solveCmd = &cobra.Command{
	Use:   "solve <day>",
	Short: "Solve one day's puzzle",
	Long:  "Reads the day's input from --input or from the discovered inputs directory and prints both answers.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := ParseDay(args[0])
		if err != nil {
			return err
		}
		p, err := puzzle.Lookup(day)
		if err != nil {
			return err
		}

		input, path, err := ReadInput(day, solveInput)
		if err != nil {
			return err
		}
		logf("solve", "Day %d (%s) from %s", day, p.Title, path)

		opts := puzzle.DefaultOptions()
		opts.Connections = solveConnections

		start := time.Now()
		sol, err := p.Solve(input, opts)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		logf("solve", "Solved in %s", time.Since(start).Round(time.Microsecond))

		if solveJSON {
			return writeJSON(os.Stdout, dayResult{
				Day:   day,
				Title: p.Title,
				Input: path,
				Part1: sol.Part1,
				Part2: sol.Part2,
			})
		}

		fmt.Printf("Day %d: %s\n", day, p.Title)
		fmt.Printf("  Part 1: %s\n", formatAnswer(sol.Part1, solvePretty))
		fmt.Printf("  Part 2: %s\n", formatAnswer(sol.Part2, solvePretty))
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveInput, "input", "", "Input file (default: discovered dayNN.txt)")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Output as JSON")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "Group digits in answers")
	solveCmd.Flags().IntVar(&solveConnections, "connections", puzzle.DefaultOptions().Connections, "Shortest connections to make before counting circuits (day 8)")
	rootCmd.AddCommand(solveCmd)
}
