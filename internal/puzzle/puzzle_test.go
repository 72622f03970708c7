package puzzle

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer(t *testing.T) {
	v, ok := Int(42).Value()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, "42", Int(42).String())

	_, ok = None().Value()
	assert.False(t, ok)
	assert.Equal(t, "-", None().String())
}

func TestSolution_JSON(t *testing.T) {
	out, err := json.Marshal(Solution{Part1: Int(-7), Part2: None()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"part1":-7,"part2":null}`, string(out))
}

func TestRegistry(t *testing.T) {
	noop := func(string, Options) (Solution, error) { return Solution{}, nil }

	Register(Puzzle{Day: 24, Title: "registry test", Solve: noop})

	p, err := Lookup(24)
	require.NoError(t, err)
	assert.Equal(t, "registry test", p.Title)

	_, err = Lookup(23)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDay))

	assert.Panics(t, func() { Register(Puzzle{Day: 24, Solve: noop}) }, "duplicate day")
	assert.Panics(t, func() { Register(Puzzle{Day: 0, Solve: noop}) }, "invalid day")
	assert.Panics(t, func() { Register(Puzzle{Day: 22}) }, "nil solver")

	days := All()
	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Day, days[i].Day)
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b "}, Lines("a\r\n\r\nb \n\n \n"))
	assert.Empty(t, Lines(""))
}

func TestBlocks(t *testing.T) {
	got := Blocks("3-5\n10-14\n\n1\n5\n\n\n")
	assert.Equal(t, [][]string{{"3-5", "10-14"}, {"1", "5"}}, got)
}

func TestParseError(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := Errorf(2, "x", "bad number: %w", cause)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `line 3 "x"`)
}
