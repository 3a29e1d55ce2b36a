// Package schema has the canonical data model, enums and selection state for hivetrend.
package schema

import "time"

// Entry is one canonical inspection row derived from a single input line.
// Colony and Date are always set; every other field may be nil when the
// observation is absent for that date.
type Entry struct {
	Colony         string    `json:"colony"`
	Date           time.Time `json:"date"`
	Weight         *float64  `json:"weight,omitempty"`
	MiteCount      *float64  `json:"mite_count,omitempty"`
	MiteDays       *float64  `json:"mite_days,omitempty"`
	MiteRate       *float64  `json:"mite_rate,omitempty"`
	CombOccupied   *float64  `json:"comb_occupied,omitempty"`
	StrengthRating *float64  `json:"colony_strength_rating,omitempty"`
}

// Dataset is the canonical dataset produced by one successful load.
// Entries form a multiset keyed by (colony, date); duplicate same-day rows
// are preserved, never merged.
type Dataset struct {
	Entries []Entry

	// Columns maps each resolved canonical column to the source column
	// name it was taken from. Absence of a key means the input carried no
	// such column at all, which is distinct from present-but-null values.
	Columns map[Column]string

	Source   string    // file name or upload label the dataset came from
	LoadedAt time.Time // wall-clock time of the load
}

// HasColumn reports whether the canonical column was resolved during load.
func (d *Dataset) HasColumn(col Column) bool {
	_, ok := d.Columns[col]
	return ok
}

// Colonies returns the distinct colony names in first-seen order.
func (d *Dataset) Colonies() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range d.Entries {
		if !seen[e.Colony] {
			seen[e.Colony] = true
			out = append(out, e.Colony)
		}
	}
	return out
}

// Years returns the distinct calendar years observed in the dataset,
// in ascending order.
func (d *Dataset) Years() []int {
	seen := make(map[int]bool)
	var out []int
	for _, e := range d.Entries {
		y := e.Date.Year()
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// HasYear reports whether the given calendar year is observed in the dataset.
func (d *Dataset) HasYear(year int) bool {
	for _, e := range d.Entries {
		if e.Date.Year() == year {
			return true
		}
	}
	return false
}

// LoadReport summarizes a single load for logging and snapshot tracking.
type LoadReport struct {
	Source        string    `json:"source"`
	Delimiter     rune      `json:"-"`
	DelimiterName string    `json:"delimiter"`
	Encoding      string    `json:"encoding"`
	RowsRead      int       `json:"rows_read"`
	RowsKept      int       `json:"rows_kept"`
	RowsDropped   int       `json:"rows_dropped"`
	DroppedCols   []string  `json:"dropped_columns,omitempty"` // source columns discarded by duplicate resolution
	LoadedAt      time.Time `json:"loaded_at"`
}

// ProjectedRow is one chartable observation after metric resolution.
type ProjectedRow struct {
	Colony  string    `json:"colony"`
	Date    time.Time `json:"date"`
	Ordinal int       `json:"ordinal"` // position on the compressed axis; -1 when uncompressed
	Value   float64   `json:"value"`
}

// Projection is the filtered, metric-resolved, ordered row set handed to
// the rendering layer, plus the list of selected colonies that ended up
// with no rows in range.
type Projection struct {
	Metric     MetricKind     `json:"metric"`
	Column     Column         `json:"column"`
	Rows       []ProjectedRow `json:"rows"`
	Colonies   []string       `json:"colonies"`          // colonies with data, natural-sorted
	Missing    []string       `json:"missing,omitempty"` // selected but dataless colonies
	Compressed bool           `json:"compressed"`
	Start      *time.Time     `json:"start,omitempty"` // nil means unbounded
	End        time.Time      `json:"end"`
	EndClosed  bool           `json:"end_closed"` // true for explicit-year ranges
}

// Empty reports whether the projection yielded no rows at all.
func (p *Projection) Empty() bool {
	return len(p.Rows) == 0
}
