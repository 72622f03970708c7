package interval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is an inclusive span of integers
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Parse parses "start-end"
func Parse(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing '-'", s)
	}
	start, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("range %q start: %w", s, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("range %q end: %w", s, err)
	}
	if end < start {
		return Range{}, fmt.Errorf("range %q: end before start", s)
	}
	return Range{Start: start, End: end}, nil
}

// Contains reports whether v lies in r
func (r Range) Contains(v int64) bool {
	return v >= r.Start && v <= r.End
}

// Len is the number of integers in r
func (r Range) Len() int64 {
	return r.End - r.Start + 1
}

// Merge returns the union of ranges as disjoint ranges sorted by start.
// Overlapping ranges are joined; the input is not modified.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := append([]Range(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Digits returns the number of decimal digits in a non-negative v
func Digits(v int64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for ; v > 0; v /= 10 {
		n++
	}
	return n
}

// Pow10 returns 10^n
func Pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// SplitByDigits cuts a non-negative range into subranges whose members all
// have the same number of digits
func SplitByDigits(r Range) []Range {
	var parts []Range
	for cur := r.Start; cur <= r.End; {
		next := Pow10(Digits(cur))
		end := r.End
		if next-1 < end {
			end = next - 1
		}
		parts = append(parts, Range{Start: cur, End: end})
		cur = next
	}
	return parts
}
