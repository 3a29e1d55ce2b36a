package core

import (
	"sort"
	"time"

	"github.com/apiarylab/hivetrend/schema"
)

// Project combines the canonical dataset, the selection state and the
// resolved time bounds into the ordered row set to chart. It is a pure
// function: neither the dataset nor the state is mutated, and the same
// inputs always produce the same projection.
func Project(ds *schema.Dataset, state *schema.SelectionState, bounds TimeBounds) *schema.Projection {
	metric := state.Metric()
	proj := &schema.Projection{
		Metric:     metric,
		Column:     schema.MetricColumn(metric),
		Compressed: state.CompressTimeline(),
		Start:      bounds.Start,
		End:        bounds.End,
		EndClosed:  bounds.EndClosed,
	}

	selected := state.Colonies()
	if len(selected) == 0 {
		return proj
	}
	selectedSet := make(map[string]bool, len(selected))
	for _, c := range selected {
		selectedSet[c] = true
	}

	// Step 1: filter to selected colonies inside the time bounds,
	// keeping input order per colony so same-day duplicates stay stable.
	perColony := make(map[string][]schema.Entry)
	for _, e := range ds.Entries {
		if !selectedSet[e.Colony] || !bounds.Contains(e.Date) {
			continue
		}
		perColony[e.Colony] = append(perColony[e.Colony], e)
	}

	// Steps 2-4: resolve the metric per colony, then zero-fill or drop
	// null values. Zero-fill keeps the row with value 0; without it the
	// row disappears entirely, which changes which dates are charted.
	zeroFill := state.ZeroFill()
	var rows []schema.ProjectedRow
	withData := make(map[string]bool, len(perColony))
	for colony, entries := range perColony {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.Before(entries[j].Date)
		})
		values := metricValues(metric, entries)
		for i, v := range values {
			if v == nil {
				if !zeroFill {
					continue
				}
				v = new(float64)
			}
			rows = append(rows, schema.ProjectedRow{
				Colony:  colony,
				Date:    entries[i].Date,
				Ordinal: -1,
				Value:   *v,
			})
			withData[colony] = true
		}
	}

	// Step 5: natural ordering over colony identifiers drives both the
	// legend and the tie-break within a date.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return schema.NaturalLess(rows[i].Colony, rows[j].Colony)
	})

	// Step 6: in compressed mode the date axis becomes an ordinal
	// sequence over only the dates that carry data.
	if proj.Compressed {
		ordinals := dateOrdinals(rows)
		for i := range rows {
			rows[i].Ordinal = ordinals[rows[i].Date]
		}
	}
	proj.Rows = rows

	for colony := range withData {
		proj.Colonies = append(proj.Colonies, colony)
	}
	schema.SortNatural(proj.Colonies)

	// Step 7: selected colonies that lost every row are reported, not
	// silently omitted. Stale selections from an older dataset land here
	// as well.
	for _, colony := range selected {
		if !withData[colony] {
			proj.Missing = append(proj.Missing, colony)
		}
	}
	schema.SortNatural(proj.Missing)
	return proj
}

// metricValues resolves the active metric to one nullable value per entry,
// with entries already ordered by date ascending within the colony.
func metricValues(metric schema.MetricKind, entries []schema.Entry) []*float64 {
	values := make([]*float64, len(entries))
	switch metric {
	case schema.WeightDeltaMetric:
		// First-order finite difference of weight. The first observation
		// has no delta by definition, and a null neighbour nulls the
		// difference as well.
		for i := range entries {
			if i == 0 {
				continue
			}
			cur, prev := entries[i].Weight, entries[i-1].Weight
			if cur == nil || prev == nil {
				continue
			}
			values[i] = floatPtr(*cur - *prev)
		}
	case schema.MiteRateMetric:
		for i := range entries {
			values[i] = entries[i].MiteRate
		}
	case schema.StrengthMetric:
		// The categorical 1..3 scale is shifted +1 at projection time,
		// an axis-labeling convention that is reversed nowhere else.
		for i := range entries {
			if entries[i].StrengthRating != nil {
				values[i] = floatPtr(*entries[i].StrengthRating + 1)
			}
		}
	default:
		for i := range entries {
			values[i] = entries[i].Weight
		}
	}
	return values
}

// dateOrdinals assigns each distinct surviving date its position on the
// gap-free ordinal axis.
func dateOrdinals(rows []schema.ProjectedRow) map[time.Time]int {
	var dates []time.Time
	seen := make(map[time.Time]bool)
	for _, r := range rows {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	ordinals := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		ordinals[d] = i
	}
	return ordinals
}
