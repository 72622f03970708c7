package main

import "aoc/sleigh/cmd"

func main() {
	cmd.Execute()
}
