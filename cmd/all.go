package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"aoc/sleigh/internal/puzzle"
)

var (
	allJSON   bool
	allPretty bool
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day whose input can be found",
	RunE: func(cmd *cobra.Command, args []string) error {
		puzzles := puzzle.All()

		var bar *progressbar.ProgressBar
		if !verbose && isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(puzzles),
				progressbar.OptionSetDescription("Solving"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		results := solveAll(puzzles, func() {
			if bar != nil {
				_ = bar.Add(1)
			}
		})
		if bar != nil {
			_ = bar.Finish()
		}

		failed := 0
		for _, r := range results {
			if r.Error != "" {
				failed++
			}
		}

		if allJSON {
			if err := writeJSON(os.Stdout, results); err != nil {
				return err
			}
		} else {
			printResults(results, allPretty)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d days failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	allCmd.Flags().BoolVar(&allJSON, "json", false, "Output as JSON")
	allCmd.Flags().BoolVar(&allPretty, "pretty", false, "Group digits in answers")
	rootCmd.AddCommand(allCmd)
}

// solveAll runs each puzzle against its discovered input. Days without an
// input file are left out of the results.
func solveAll(puzzles []puzzle.Puzzle, step func()) []dayResult {
	var results []dayResult
	for _, p := range puzzles {
		input, path, err := ReadInput(p.Day, "")
		step()
		if err != nil {
			logf("all", "Day %d skipped: %v", p.Day, err)
			continue
		}

		r := dayResult{Day: p.Day, Title: p.Title, Input: path}
		sol, err := p.Solve(input, puzzle.DefaultOptions())
		if err != nil {
			logf("all", "Day %d failed: %v", p.Day, err)
			r.Error = err.Error()
		} else {
			logf("all", "Day %d solved", p.Day)
			r.Part1, r.Part2 = sol.Part1, sol.Part2
		}
		results = append(results, r)
	}
	return results
}

func printResults(results []dayResult, pretty bool) {
	if len(results) == 0 {
		fmt.Println("No inputs found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tTITLE\tPART 1\tPART 2")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%d\t%s\terror: %s\t\n", r.Day, r.Title, r.Error)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Day, r.Title,
			formatAnswer(r.Part1, pretty), formatAnswer(r.Part2, pretty))
	}
	w.Flush()
}
