package core

import (
	"strings"
	"time"
)

// entryDateLayouts are the accepted day-first date layouts, with and
// without a time-of-day suffix. Any time component is discarded after
// parsing so same-day entries compare equal.
var entryDateLayouts = []string{
	"2.1.2006",
	"02.01.2006",
	"2.1.2006 15:04",
	"02.01.2006 15:04",
	"2.1.2006 15:04:05",
	"02.01.2006 15:04:05",
}

// ParseEntryDate parses the entry-date field using day-first
// interpretation. The second return is false for unparseable input,
// which downstream treats as a null date.
func ParseEntryDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return startOfDay(t), true
		}
	}
	return time.Time{}, false
}

// startOfDay normalizes a timestamp to midnight, discarding the
// time-of-day component and any timezone information.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
