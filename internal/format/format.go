// Package format renders simulation magnitudes as compact human-readable
// strings. Small values print as plain integers; large values use an
// engineering mantissa with a magnitude suffix (K, M, B, T, Q, then
// spreadsheet-style letter sequences for anything bigger).
package format

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed suffixes for engineering exponents 3 through 15.
var suffixes = [...]string{"K", "M", "B", "T", "Q"}

// Magnitude formats a value for display.
//
//	999        -> "999"
//	1000       -> "1.00K"
//	1_000_000  -> "1.00M"
//	1e18       -> "1.00a"
func Magnitude(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	abs := math.Abs(v)
	if abs < 1000 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	exponent := int(math.Floor(math.Log10(abs)))
	eng := exponent - exponent%3
	mantissa := v / math.Pow(10, float64(eng))

	// Log10 can land an ulp below an exact power of ten, which floors the
	// exponent one short and leaves a four-digit mantissa. Renormalize.
	if math.Abs(mantissa) >= 1000 {
		eng += 3
		mantissa = v / math.Pow(10, float64(eng))
	}

	return fmt.Sprintf("%.2f%s", mantissa, suffix(eng/3))
}

// suffix returns the magnitude suffix for an engineering index
// (index 1 = 10^3, index 2 = 10^6, ...). Indexes past the fixed table
// continue as letter sequences starting at "a".
func suffix(index int) string {
	if index <= 0 {
		return ""
	}
	if index <= len(suffixes) {
		return suffixes[index-1]
	}
	return letters(index - len(suffixes) - 1)
}

// letters converts a non-negative ordinal to a bijective base-26 string:
// 0 -> "a", 25 -> "z", 26 -> "aa", 27 -> "ab", ...
func letters(n int) string {
	var buf [8]byte
	i := len(buf)

	n++ // bijective numeration is 1-based
	for n > 0 {
		n--
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
	}

	return string(buf[i:])
}
