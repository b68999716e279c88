package game

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

type RangeChunk struct {
	Min float64
	Max float64
}

// Range is a sorted list of disjoint closed intervals. Build it with
// NormalizeRange or ParseRange.
type Range []RangeChunk

// NormalizeRange sorts chunks and merges the ones that overlap or touch
// (next.Min <= last.Max+1).
func NormalizeRange(chunks []RangeChunk) Range {
	if len(chunks) == 0 {
		return Range{}
	}
	sorted := slices.Clone(chunks)
	slices.SortStableFunc(sorted, func(a, b RangeChunk) int {
		switch {
		case a.Min < b.Min:
			return -1
		case a.Min > b.Min:
			return 1
		default:
			return 0
		}
	})

	merged := make(Range, 0, len(sorted))
	for _, chunk := range sorted {
		if len(merged) == 0 {
			merged = append(merged, chunk)
			continue
		}
		last := &merged[len(merged)-1]
		if chunk.Min <= last.Max+1 {
			last.Max = math.Max(last.Max, chunk.Max)
			continue
		}
		merged = append(merged, chunk)
	}
	return merged
}

func (r Range) Contains(v float64) bool {
	for _, chunk := range r {
		if v >= chunk.Min && v <= chunk.Max {
			return true
		}
	}
	return false
}

// Integers lists every whole number covered by r, in order.
func (r Range) Integers() []int {
	var out []int
	for _, chunk := range r {
		lo := int(math.Ceil(chunk.Min))
		hi := int(math.Floor(chunk.Max))
		for v := lo; v <= hi; v++ {
			out = append(out, v)
		}
	}
	return out
}

func (r Range) String() string {
	parts := make([]string, 0, len(r))
	for _, chunk := range r {
		if chunk.Min == chunk.Max {
			parts = append(parts, formatDay(chunk.Min))
			continue
		}
		parts = append(parts, formatDay(chunk.Min)+"-"+formatDay(chunk.Max))
	}
	return strings.Join(parts, ", ")
}

func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RangeError reports a range string that could not be parsed.
type RangeError struct {
	Input  string
	Token  string
	Reason string
}

func (e *RangeError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%q could not be parsed into a range: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("%q could not be parsed into a range (%s in %q)", e.Input, e.Reason, e.Token)
}

var rangeTokenRE = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(?:\s*-\s*(-?\d+(?:\.\d+)?))?$`)

// ParseRange reads ranges such as "1-3, 5, 8-9". The empty string is the
// empty range.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, &RangeError{Input: s, Reason: "blank input"}
	}

	tokens := strings.Split(trimmed, ", ")
	chunks := make([]RangeChunk, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		match := rangeTokenRE.FindStringSubmatch(token)
		if match == nil {
			return nil, &RangeError{Input: s, Token: token, Reason: "invalid token"}
		}
		first, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return nil, &RangeError{Input: s, Token: token, Reason: "invalid number"}
		}
		second := first
		if match[2] != "" {
			second, err = strconv.ParseFloat(match[2], 64)
			if err != nil {
				return nil, &RangeError{Input: s, Token: token, Reason: "invalid number"}
			}
		}
		if first > second {
			return nil, &RangeError{Input: s, Token: token, Reason: "min > max"}
		}
		chunks = append(chunks, RangeChunk{Min: first, Max: second})
	}
	return NormalizeRange(chunks), nil
}

// DayRange builds a range from individual days.
func DayRange(days ...int) Range {
	chunks := make([]RangeChunk, 0, len(days))
	for _, d := range days {
		chunks = append(chunks, RangeChunk{Min: float64(d), Max: float64(d)})
	}
	return NormalizeRange(chunks)
}

func formatDay(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
