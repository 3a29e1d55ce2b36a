package core

import (
	"strconv"
	"strings"
)

// parseNumber parses a numeric cell, accepting both dot and comma decimal
// separators since the exports mix locales. The second return is false for
// empty or unparseable cells.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// German exports write 12,5 for 12.5. Only rewrite when there is a
	// single comma and no dot, so 1,234.5 stays untouched.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DeriveMiteRate computes the mite infestation rate from a raw count and
// the trap exposure days. The rate is defined only when a count is
// present; days of nil, zero or below are clamped to 1 so the division is
// always safe.
func DeriveMiteRate(count, days *float64) *float64 {
	if count == nil {
		return nil
	}
	effective := 1.0
	if days != nil && *days > 0 {
		effective = *days
	}
	rate := *count / effective
	return &rate
}

// floatPtr returns a pointer to v. Small helper for nullable columns.
func floatPtr(v float64) *float64 { return &v }
