package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/apiarylab/hivetrend/schema"
)

// TimeBounds is a resolved time range. Start of nil means unbounded.
// EndClosed distinguishes the explicit-year case, whose upper bound is
// inclusive, from the half-open relative windows. The asymmetry is
// deliberate and preserved for compatibility with existing exports.
type TimeBounds struct {
	Start     *time.Time
	End       time.Time
	EndClosed bool
}

// Contains reports whether the date falls inside the bounds.
func (b TimeBounds) Contains(date time.Time) bool {
	if b.Start != nil && date.Before(*b.Start) {
		return false
	}
	if b.EndClosed {
		return !date.After(b.End)
	}
	return date.Before(b.End)
}

// relativeWindows maps the standard relative tokens to their day/month
// offsets from today.
var relativeWindows = map[schema.RangeToken]struct{ days, months int }{
	schema.Range7Days:   {days: 7},
	schema.Range14Days:  {days: 14},
	schema.Range30Days:  {days: 30},
	schema.Range3Months: {months: 3},
	schema.Range6Months: {months: 6},
}

// ResolveTimeRange maps a time-range token to concrete bounds anchored at
// today. Relative windows resolve to [today-N, today+1d) so that today
// itself is included under the half-open interval; "all" leaves the start
// unbounded. A 4-digit year observed in the dataset resolves to
// [Jan 1, Dec 31] of that year, closed on both ends. Unrecognized tokens
// fall back to the first standard option instead of failing.
func ResolveTimeRange(token schema.RangeToken, today time.Time, ds *schema.Dataset) TimeBounds {
	today = startOfDay(today)
	trimmed := schema.RangeToken(strings.TrimSpace(string(token)))

	if year, ok := parseYearToken(trimmed); ok && ds != nil && ds.HasYear(year) {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return TimeBounds{Start: &start, End: end, EndClosed: true}
	}

	if trimmed == schema.RangeAll {
		return TimeBounds{End: today.AddDate(0, 0, 1)}
	}

	window, ok := relativeWindows[trimmed]
	if !ok {
		window = relativeWindows[schema.StandardRangeTokens[0]]
	}
	start := today.AddDate(0, -window.months, -window.days)
	return TimeBounds{Start: &start, End: today.AddDate(0, 0, 1)}
}

// parseYearToken reports whether the token is a plain 4-digit year.
func parseYearToken(token schema.RangeToken) (int, bool) {
	s := string(token)
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}
