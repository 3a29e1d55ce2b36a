package schema

import "time"

// ColonySummary aggregates one colony's observations for the status report.
type ColonySummary struct {
	Colony         string     `json:"colony"`
	Entries        int        `json:"entries"`
	FirstDate      time.Time  `json:"first_date"`
	LastDate       time.Time  `json:"last_date"`
	LatestWeight   *float64   `json:"latest_weight,omitempty"`
	LatestStrength *float64   `json:"latest_strength,omitempty"`
}

// SnapshotStatus reports the state of the load-snapshot store.
type SnapshotStatus struct {
	Backend        string         `json:"backend"`
	Connected      bool           `json:"connected"`
	TotalLoads     int            `json:"total_loads"`
	LastLoadID     int64          `json:"last_load_id,omitempty"`
	LastLoadTime   time.Time      `json:"last_load_time,omitzero"`
	OldestLoadTime time.Time      `json:"oldest_load_time,omitzero"`
	TableSizes     map[string]int `json:"table_sizes"`
}

// LoadRunRecord is one persisted load run, as stored by the snapshot store.
type LoadRunRecord struct {
	LoadID      int64
	Source      string
	Delimiter   string
	Encoding    string
	RowsRead    int
	RowsKept    int
	RowsDropped int
	StartedAt   time.Time
	FinishedAt  *time.Time
}

// EntryRecord is one persisted canonical entry, as stored by the snapshot
// store. Nullable observations stay nullable in storage.
type EntryRecord struct {
	LoadID         int64
	Colony         string
	Date           time.Time
	Weight         *float64
	MiteCount      *float64
	MiteDays       *float64
	MiteRate       *float64
	CombOccupied   *float64
	StrengthRating *float64
}
