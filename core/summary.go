package core

import (
	"sort"

	"github.com/apiarylab/hivetrend/schema"
)

// SummarizeColonies aggregates the dataset per colony: observation count,
// first and last inspection dates and the most recent weight and strength
// readings. Results come back in natural identifier order.
func SummarizeColonies(ds *schema.Dataset) []schema.ColonySummary {
	byColony := make(map[string]*schema.ColonySummary)
	latestWeightDate := make(map[string]int64)
	latestStrengthDate := make(map[string]int64)

	for _, e := range ds.Entries {
		s, ok := byColony[e.Colony]
		if !ok {
			s = &schema.ColonySummary{Colony: e.Colony, FirstDate: e.Date, LastDate: e.Date}
			byColony[e.Colony] = s
		}
		s.Entries++
		if e.Date.Before(s.FirstDate) {
			s.FirstDate = e.Date
		}
		if e.Date.After(s.LastDate) {
			s.LastDate = e.Date
		}
		// Latest non-null reading wins; same-day duplicates keep the
		// later input row, matching the chart's last-value semantics.
		if e.Weight != nil && e.Date.Unix() >= latestWeightDate[e.Colony] {
			latestWeightDate[e.Colony] = e.Date.Unix()
			s.LatestWeight = e.Weight
		}
		if e.StrengthRating != nil && e.Date.Unix() >= latestStrengthDate[e.Colony] {
			latestStrengthDate[e.Colony] = e.Date.Unix()
			s.LatestStrength = e.StrengthRating
		}
	}

	out := make([]schema.ColonySummary, 0, len(byColony))
	for _, s := range byColony {
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return schema.NaturalLess(out[i].Colony, out[j].Colony)
	})
	return out
}
