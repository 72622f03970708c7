package days

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/sleigh/internal/interval"
	"aoc/sleigh/internal/puzzle"
)

const (
	day01Example = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82"
	day02Example = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224,\n1698522-1698528,446443-446449,38593856-38593862,565653-565659,\n824824821-824824827,2121212118-2121212124"
	day03Example = "987654321111111\n811111111111119\n234234234234278\n818181911112111"
	day04Example = "..@@.@@@@.\n@@@.@.@.@@\n@@@@@.@.@@\n@.@@@@..@.\n@@.@@@@.@@\n.@@@@@@@.@\n.@.@.@.@@@\n@.@@@.@@@@\n.@@@@@@@@.\n@.@.@@@.@."
	day05Example = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"
	day06Example = "123 328  51 64 \n 45 64  387 23 \n  6 98  215 314\n*   +   *   +  "
	day07Example = ".......S.......\n...............\n.......^.......\n...............\n......^.^......\n...............\n.....^.^.^.....\n...............\n....^.^...^....\n...............\n...^.^...^.^...\n...............\n..^...^.....^..\n...............\n.^.^.^.^.^...^.\n..............."
	day08Example = "162,817,812\n57,618,57\n906,360,560\n592,479,940\n352,342,300\n466,668,158\n542,29,236\n431,825,988\n739,650,466\n52,470,668\n216,146,977\n819,987,18\n117,168,530\n805,96,715\n346,949,466\n970,615,88\n941,993,340\n862,61,35\n984,92,344\n425,690,689"
	day09Example = "7,1\n11,1\n11,7\n9,7\n9,5\n2,5\n2,3\n7,3"
	day10Example = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}\n[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}\n[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}"
)

func solve(t *testing.T, day int, input string, opts puzzle.Options) (int64, int64) {
	t.Helper()
	p, err := puzzle.Lookup(day)
	require.NoError(t, err)
	sol, err := p.Solve(input, opts)
	require.NoError(t, err)
	p1, ok := sol.Part1.Value()
	require.True(t, ok, "part 1 missing")
	p2, ok := sol.Part2.Value()
	require.True(t, ok, "part 2 missing")
	return p1, p2
}

func TestExamples(t *testing.T) {
	tests := []struct {
		day          int
		input        string
		opts         puzzle.Options
		part1, part2 int64
	}{
		{day: 1, input: day01Example, part1: 3, part2: 6},
		{day: 2, input: day02Example, part1: 1227775554, part2: 4174379265},
		{day: 3, input: day03Example, part1: 357, part2: 3121910778619},
		{day: 4, input: day04Example, part1: 13, part2: 43},
		{day: 5, input: day05Example, part1: 3, part2: 14},
		{day: 6, input: day06Example, part1: 4277556, part2: 3263827},
		{day: 7, input: day07Example, part1: 21, part2: 40},
		{day: 8, input: day08Example, opts: puzzle.Options{Connections: 10}, part1: 40, part2: 25272},
		{day: 9, input: day09Example, part1: 50, part2: 24},
		{day: 10, input: day10Example, part1: 7, part2: 33},
	}
	for _, tt := range tests {
		t.Run(puzzleName(tt.day), func(t *testing.T) {
			p1, p2 := solve(t, tt.day, tt.input, tt.opts)
			assert.Equal(t, tt.part1, p1, "part 1")
			assert.Equal(t, tt.part2, p2, "part 2")
		})
	}
}

func puzzleName(day int) string {
	p, err := puzzle.Lookup(day)
	if err != nil {
		return "unregistered"
	}
	return p.Title
}

func TestAllDaysRegistered(t *testing.T) {
	for day := 1; day <= 10; day++ {
		_, err := puzzle.Lookup(day)
		assert.NoError(t, err, "day %d", day)
	}
}

func TestDay01_Variants(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		part1, part2 int64
	}{
		{"large left turn", "L168\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82", 3, 7},
		{"large right turn", "L168\nL30\nR448\nL5\nR60\nL55\nL1\nL99\nR14\nL82", 3, 11},
		{"full turns from zero", "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR100\nL100", 5, 7},
		{"left onto zero", "L50", 1, 1},
		{"crlf input", "L50\r\nR100\r\n", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := solve(t, 1, tt.input, puzzle.Options{})
			assert.Equal(t, tt.part1, p1, "part 1")
			assert.Equal(t, tt.part2, p2, "part 2")
		})
	}
}

func TestDay01_BadInput(t *testing.T) {
	_, err := solveDay01("L10\nX5", puzzle.Options{})
	require.Error(t, err)
	var pe *puzzle.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestDay02_RepeatedIDs(t *testing.T) {
	var got []int64
	repeatedIDs(interval.Range{Start: 1188511880, End: 1188511890}, 2, func(id int64) { got = append(got, id) })
	assert.Equal(t, []int64{1188511885}, got)

	got = nil
	repeatedIDs(interval.Range{Start: 824824821, End: 824824827}, 3, func(id int64) { got = append(got, id) })
	assert.Equal(t, []int64{824824824}, got)

	assert.Equal(t, int64(10101), repeatMultiplier(2, 3))
}

func TestDay03_MaxJoltage(t *testing.T) {
	bank := []byte{8, 1, 8, 1, 8, 1, 9, 1, 1, 1, 1, 2, 1, 1, 1}
	v, err := maxJoltage(bank, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(92), v)

	v, err = maxJoltage(bank, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(888911112111), v)

	_, err = maxJoltage([]byte{1, 2}, 12)
	assert.Error(t, err)
}

func TestDay05_NeedsTwoSections(t *testing.T) {
	_, err := solveDay05("3-5\n10-14\n", puzzle.Options{})
	assert.Error(t, err)
}

func TestDay06_BadOperator(t *testing.T) {
	_, err := solveDay06("1 2\n- +", puzzle.Options{})
	assert.ErrorContains(t, err, "not + or *")
}

func TestDay07_NoSource(t *testing.T) {
	_, err := solveDay07("...\n.^.", puzzle.Options{})
	assert.ErrorContains(t, err, "no beam source")
}

func TestDay08_ConnectionsOption(t *testing.T) {
	p1, p2 := solve(t, 8, day08Example, puzzle.DefaultOptions())
	// 1000 connections exceed the 190 available edges and join everything.
	assert.Equal(t, int64(20), p1)
	assert.Equal(t, int64(25272), p2)

	p1, _ = solve(t, 8, day08Example, puzzle.Options{Connections: 0})
	assert.Equal(t, int64(1), p1)
}

func TestDay08_TooFewJunctions(t *testing.T) {
	_, err := solveDay08("1,2,3", puzzle.DefaultOptions())
	assert.Error(t, err)
}

func TestDay09_Area(t *testing.T) {
	assert.Equal(t, int64(24), spanning(tile{2, 5}, tile{9, 7}).area())
	assert.Equal(t, int64(24), spanning(tile{9, 7}, tile{2, 5}).area())
	assert.Equal(t, int64(1), spanning(tile{3, 3}, tile{3, 3}).area())
}

func TestDay10_Machines(t *testing.T) {
	machines, err := parseMachines(day10Example)
	require.NoError(t, err)
	require.Len(t, machines, 3)

	wantToggles := []int{2, 3, 2}
	wantJolts := []int{10, 12, 11}
	for i, m := range machines {
		got, err := fewestToggles(m)
		require.NoError(t, err)
		assert.Equal(t, wantToggles[i], got, "machine %d toggles", i+1)

		got, err = fewestJoltagePresses(m)
		require.NoError(t, err)
		assert.Equal(t, wantJolts[i], got, "machine %d joltage", i+1)
	}
}

func TestDay10_Unreachable(t *testing.T) {
	m, err := parseMachine("[#.] (1) {1,0}")
	require.NoError(t, err)
	_, err = fewestToggles(m)
	assert.ErrorIs(t, err, errUnreachable)
	_, err = fewestJoltagePresses(m)
	assert.ErrorIs(t, err, errUnreachable)
}

func TestDay10_ParseErrors(t *testing.T) {
	for _, line := range []string{
		"(1) {1}",
		"[.#] (2) {1,1}",
		"[.#] (0) {1}",
		"[.x] (0) {1,1}",
	} {
		_, err := parseMachine(line)
		assert.Error(t, err, line)
	}
}
