package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	// registers every day's solver
	_ "aoc/sleigh/internal/days"
)

var (
	inputsDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "sleigh",
	Short:         "Puzzle solvers with a junction clustering engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputsDir, "inputs", "", "Directory holding dayNN.txt input files")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log progress to stderr")
}

func logf(tag, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "["+tag+"] "+format+"\n", args...)
	}
}

// InputFileName is the file name looked up for a day's puzzle input
func InputFileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// DiscoverInput finds a day's input file using priority: env > flag > walk-up > XDG fallback
func DiscoverInput(day int) (string, error) {
	name := InputFileName(day)

	// 1. Environment variable
	if envDir := os.Getenv("SLEIGH_INPUTS"); envDir != "" {
		candidate := filepath.Join(envDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// 2. CLI flag
	if inputsDir != "" {
		candidate := filepath.Join(inputsDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		return "", fmt.Errorf("input not found at --inputs path: %s", candidate)
	}

	// 3. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, "inputs", name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	// 4. XDG fallback
	home, err := os.UserHomeDir()
	if err == nil {
		xdgPath := filepath.Join(home, ".local", "share", "sleigh", "inputs", name)
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, nil
		}
	}

	return "", fmt.Errorf("no %s found (set SLEIGH_INPUTS, use --inputs or --input, or run below a directory containing inputs/)", name)
}

// ReadInput loads a day's input from path, or from discovery when path is empty
func ReadInput(day int, path string) (string, string, error) {
	if path == "" {
		found, err := DiscoverInput(day)
		if err != nil {
			return "", "", err
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), path, nil
}

// ParseDay accepts "8", "08" or "day08"
func ParseDay(arg string) (int, error) {
	s := arg
	if len(s) > 3 && (s[:3] == "day" || s[:3] == "Day") {
		s = s[3:]
	}
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q: want a number from 1 to 25", arg)
	}
	return day, nil
}
