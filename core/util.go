package core

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// minSimilarity is the lowest ratio ClosestMatch accepts as a suggestion.
const minSimilarity = .6

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// EqualFold compares two user inputs ignoring case and surrounding whitespace.
func EqualFold(a, b string) bool {
	return strings.EqualFold(CleanString(a), CleanString(b))
}

// ClosestMatch returns the candidate most similar to `s` (case-insensitive), or "" if none is close enough.
func ClosestMatch(s string, candidates []string) string {
	s = CleanString(s, true /* lower */)
	if s == "" {
		return ""
	}
	var (
		best      string
		bestRatio float64
	)
	for _, c := range candidates {
		lc := strings.ToLower(c)
		ratio := difflib.NewMatcher(strings.Split(s, ""), strings.Split(lc, "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio < minSimilarity {
		return ""
	}
	return best
}
