package game

import (
	"math"
	"strconv"
)

// RoundTo rounds v to digits decimals, ties away from zero.
// The scaled value is first cut to 11 decimals so that inputs such as 0.145
// (stored as 0.14499999...) round the way they read.
func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	negative := v < 0
	if negative {
		v = -v
	}
	scale := math.Pow(10, float64(digits))
	v = fixed(v*scale, 11)
	v = fixed(math.Round(v)/scale, digits)
	if negative {
		v = fixed(-v, digits)
	}
	return v
}

func fixed(v float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// boundedAt reads curve at index i, clamping i to the curve.
func boundedAt(curve []float64, i int) float64 {
	if len(curve) == 0 {
		return 0
	}
	return curve[clampIndex(i, len(curve))]
}
