package video

import (
	"sort"
	"strings"
)

// SortNatural sorts names in place in natural order, so clip2.mp4 comes
// before clip10.mp4. The sort is stable: equal keys keep their original
// relative order.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalCompare(names[i], names[j]) < 0
	})
}

// NaturalCompare orders two filenames by alternating digit and non-digit
// runs. Digit runs compare by integer value, non-digit runs compare
// case-insensitively, and a string that runs out of runs first (a prefix)
// sorts first. Returns -1, 0 or 1.
func NaturalCompare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		runA, digitsA, restA := nextRun(a)
		runB, digitsB, restB := nextRun(b)

		switch {
		case digitsA && digitsB:
			if c := compareNumeric(runA, runB); c != 0 {
				return c
			}
		case digitsA != digitsB:
			// Mixed run kinds at the same position: numbers sort first.
			if digitsA {
				return -1
			}
			return 1
		default:
			if c := strings.Compare(strings.ToLower(runA), strings.ToLower(runB)); c != 0 {
				return c
			}
		}

		a, b = restA, restB
	}

	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	default:
		return 1
	}
}

// nextRun splits off the leading run of s: a maximal sequence of either
// digits or non-digits.
func nextRun(s string) (run string, digits bool, rest string) {
	digits = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], digits, s[i:]
}

// compareNumeric compares two digit runs by integer value without parsing,
// so arbitrarily long runs cannot overflow. Leading zeros are ignored;
// "01" and "1" compare equal.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
