package days

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"aoc/sleigh/internal/puzzle"
)

// maxButtons bounds the subset enumeration per machine
const maxButtons = 20

var errUnreachable = errors.New("target cannot be reached with these buttons")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 10, Title: "Factory", Solve: solveDay10})
}

type machine struct {
	width   int
	lights  uint64  // bit i set when light i must end up on
	buttons [][]int // indices each button toggles or increments
	joltage []int
}

func (m *machine) buttonMask(b int) uint64 {
	var mask uint64
	for _, i := range m.buttons[b] {
		mask |= 1 << uint(i)
	}
	return mask
}

func parseIndexList(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseMachine(line string) (*machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, errors.New("expected [lights] (buttons...) {joltage}")
	}

	pattern := fields[0]
	if len(pattern) < 2 || pattern[0] != '[' || pattern[len(pattern)-1] != ']' {
		return nil, fmt.Errorf("light diagram %q", pattern)
	}
	m := &machine{width: len(pattern) - 2}
	if m.width > 64 {
		return nil, fmt.Errorf("%d lights exceed 64", m.width)
	}
	for i, c := range pattern[1 : len(pattern)-1] {
		switch c {
		case '#':
			m.lights |= 1 << uint(i)
		case '.':
		default:
			return nil, fmt.Errorf("light diagram %q: unexpected %q", pattern, c)
		}
	}

	rest := fields[1:]
	last := rest[len(rest)-1]
	if strings.HasPrefix(last, "{") && strings.HasSuffix(last, "}") {
		jolts, err := parseIndexList(last[1 : len(last)-1])
		if err != nil {
			return nil, fmt.Errorf("joltage %q: %w", last, err)
		}
		if len(jolts) != m.width {
			return nil, fmt.Errorf("joltage has %d counters, want %d", len(jolts), m.width)
		}
		for _, j := range jolts {
			if j < 0 {
				return nil, fmt.Errorf("joltage %q: negative counter", last)
			}
		}
		m.joltage = jolts
		rest = rest[:len(rest)-1]
	}

	for _, f := range rest {
		if len(f) < 2 || f[0] != '(' || f[len(f)-1] != ')' {
			return nil, fmt.Errorf("button %q", f)
		}
		idx, err := parseIndexList(f[1 : len(f)-1])
		if err != nil {
			return nil, fmt.Errorf("button %q: %w", f, err)
		}
		for _, i := range idx {
			if i < 0 || i >= m.width {
				return nil, fmt.Errorf("button %q: light %d out of range", f, i)
			}
		}
		m.buttons = append(m.buttons, idx)
	}
	if len(m.buttons) > maxButtons {
		return nil, fmt.Errorf("%d buttons exceed %d", len(m.buttons), maxButtons)
	}
	return m, nil
}

func parseMachines(input string) ([]*machine, error) {
	var machines []*machine
	for i, line := range puzzle.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := parseMachine(line)
		if err != nil {
			return nil, puzzle.Errorf(i, line, "%w", err)
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// fewestToggles finds the smallest set of buttons whose toggles XOR to the
// light pattern. Pressing a button twice cancels out, so each is pressed at most once.
func fewestToggles(m *machine) (int, error) {
	masks := make([]uint64, len(m.buttons))
	for b := range m.buttons {
		masks[b] = m.buttonMask(b)
	}

	best := -1
	for set := uint64(0); set < 1<<uint(len(masks)); set++ {
		presses := bits.OnesCount64(set)
		if best >= 0 && presses >= best {
			continue
		}
		var lit uint64
		for b := range masks {
			if set&(1<<uint(b)) != 0 {
				lit ^= masks[b]
			}
		}
		if lit == m.lights {
			best = presses
		}
	}
	if best < 0 {
		return 0, errUnreachable
	}
	return best, nil
}

// pressSet is the effect of pressing a subset of buttons once each
type pressSet struct {
	presses int
	effect  []int
}

type joltageSolver struct {
	byParity map[uint64][]pressSet
	memo     map[string]int
}

const unreachable = int(^uint(0) >> 2)

func newJoltageSolver(m *machine) *joltageSolver {
	s := &joltageSolver{
		byParity: make(map[uint64][]pressSet),
		memo:     make(map[string]int),
	}
	for set := uint64(0); set < 1<<uint(len(m.buttons)); set++ {
		ps := pressSet{presses: bits.OnesCount64(set), effect: make([]int, m.width)}
		for b, idx := range m.buttons {
			if set&(1<<uint(b)) == 0 {
				continue
			}
			for _, i := range idx {
				ps.effect[i]++
			}
		}
		s.byParity[parityOf(ps.effect)] = append(s.byParity[parityOf(ps.effect)], ps)
	}
	return s
}

func parityOf(v []int) uint64 {
	var mask uint64
	for i, x := range v {
		if x%2 != 0 {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

func counterKey(v []int) string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}

// fewest returns the minimum presses that raise every counter to target.
// The buttons pressed an odd number of times must match target's parity;
// removing them leaves an all-even remainder reached by pressing every
// button half as often, twice.
func (s *joltageSolver) fewest(target []int) int {
	done := true
	for _, t := range target {
		if t != 0 {
			done = false
			break
		}
	}
	if done {
		return 0
	}

	key := counterKey(target)
	if v, ok := s.memo[key]; ok {
		return v
	}

	best := unreachable
	half := make([]int, len(target))
	for _, ps := range s.byParity[parityOf(target)] {
		fits := true
		for i, t := range target {
			if ps.effect[i] > t {
				fits = false
				break
			}
			half[i] = (t - ps.effect[i]) / 2
		}
		if !fits {
			continue
		}
		sub := s.fewest(half)
		if sub == unreachable {
			continue
		}
		if total := ps.presses + 2*sub; total < best {
			best = total
		}
	}
	s.memo[key] = best
	return best
}

func fewestJoltagePresses(m *machine) (int, error) {
	if m.joltage == nil {
		return 0, errors.New("machine has no joltage requirements")
	}
	n := newJoltageSolver(m).fewest(m.joltage)
	if n == unreachable {
		return 0, errUnreachable
	}
	return n, nil
}

func solveDay10(input string, _ puzzle.Options) (puzzle.Solution, error) {
	machines, err := parseMachines(input)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("parsing machines: %w", err)
	}

	var toggles, jolts int64
	for i, m := range machines {
		t, err := fewestToggles(m)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("machine %d lights: %w", i+1, err)
		}
		j, err := fewestJoltagePresses(m)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("machine %d joltage: %w", i+1, err)
		}
		toggles += int64(t)
		jolts += int64(j)
	}
	return puzzle.Solution{Part1: puzzle.Int(toggles), Part2: puzzle.Int(jolts)}, nil
}
