// Package natsort orders strings the way people read them: runs of digits
// compare by numeric value, everything else compares case-insensitively.
//
//	ep1.mp4 < ep2.mp4 < ep10.mp4
//
// Strings that are equal under those rules ("ep01" and "ep1", "A" and "a")
// fall back to a byte comparison, so Compare is a total order and sorting
// with it is deterministic.
package natsort

import (
	"sort"
	"strings"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or after b.
// It returns 0 only when a == b.
func Compare(a, b string) int {
	if c := compareRuns(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts s in place in natural order.
func Sort(s []string) {
	sort.Slice(s, func(i, j int) bool {
		return Less(s[i], s[j])
	})
}

// Sorted returns a naturally ordered copy of s.
func Sorted(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	Sort(out)
	return out
}

func compareRuns(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		aDigit, bDigit := isDigit(a[i]), isDigit(b[j])

		switch {
		case aDigit && bDigit:
			ra, ni := run(a, i, true)
			rb, nj := run(b, j, true)
			if c := compareNumbers(ra, rb); c != 0 {
				return c
			}
			i, j = ni, nj
		case aDigit:
			return -1
		case bDigit:
			return 1
		default:
			ra, ni := run(a, i, false)
			rb, nj := run(b, j, false)
			if c := strings.Compare(strings.ToLower(ra), strings.ToLower(rb)); c != 0 {
				return c
			}
			i, j = ni, nj
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

// run returns the maximal digit (or non-digit) run of s starting at start.
func run(s string, start int, digits bool) (string, int) {
	end := start
	for end < len(s) && isDigit(s[end]) == digits {
		end++
	}
	return s[start:end], end
}

// compareNumbers compares two digit runs by value without parsing them,
// so arbitrarily long runs never overflow.
func compareNumbers(a, b string) int {
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
	return '0' <= c && c <= '9'
}
