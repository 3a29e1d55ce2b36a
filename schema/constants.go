package schema

// Custom string types for type safety.
type (
	// Column represents a canonical field name in the resolved schema.
	Column string

	// MetricKind represents a chartable metric.
	MetricKind string

	// RangeToken represents a user-facing time-range choice, either one of
	// the standard relative windows or a 4-digit year observed in the data.
	RangeToken string

	// OutputMode represents the format of the output.
	OutputMode string

	// SnapshotBackend represents the database backend for load snapshots.
	SnapshotBackend string
)

// Canonical column names produced by the resolver.
const (
	ColumnColony       Column = "colony"
	ColumnDate         Column = "date"
	ColumnWeight       Column = "weight"
	ColumnMiteCount    Column = "mite_count"
	ColumnMiteDays     Column = "mite_days"
	ColumnMiteRate     Column = "mite_rate"
	ColumnCombOccupied Column = "comb_occupied"
	ColumnStrength     Column = "colony_strength_rating"
)

// All chartable metrics supported.
const (
	WeightMetric      MetricKind = "weight" // default
	WeightDeltaMetric MetricKind = "weight-delta"
	MiteRateMetric    MetricKind = "mite-rate"
	StrengthMetric    MetricKind = "strength"
)

// Standard relative time-range tokens. StandardRangeTokens keeps the
// presentation order; unknown tokens fall back to the first element.
const (
	Range7Days   RangeToken = "7 days"
	Range14Days  RangeToken = "14 days"
	Range30Days  RangeToken = "30 days"
	Range3Months RangeToken = "3 months"
	Range6Months RangeToken = "6 months"
	RangeAll     RangeToken = "all"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     SnapshotBackend = "sqlite" // default
	MySQLBackend      SnapshotBackend = "mysql"
	PostgreSQLBackend SnapshotBackend = "postgresql"
	NoneBackend       SnapshotBackend = "none"
)

// Colony strength ratings on the categorical 1..3 scale.
const (
	StrengthWeak   = 1.0
	StrengthNormal = 2.0
	StrengthStrong = 3.0
)

// AllMetricKinds returns a list of all supported metrics.
var AllMetricKinds = []MetricKind{WeightMetric, WeightDeltaMetric, MiteRateMetric, StrengthMetric}

// StandardRangeTokens lists the relative-window tokens in presentation order.
var StandardRangeTokens = []RangeToken{
	Range7Days,
	Range14Days,
	Range30Days,
	Range3Months,
	Range6Months,
	RangeAll,
}

// ValidMetricKinds lists all valid metrics.
var ValidMetricKinds = map[MetricKind]struct{}{
	WeightMetric:      {},
	WeightDeltaMetric: {},
	MiteRateMetric:    {},
	StrengthMetric:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSnapshotBackends lists all valid snapshot backends.
var ValidSnapshotBackends = map[SnapshotBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MetricColumn maps a metric to the canonical column it charts.
// WeightDeltaMetric reads the weight column; the per-colony difference is
// computed at projection time, not stored.
func MetricColumn(m MetricKind) Column {
	switch m {
	case WeightDeltaMetric:
		return ColumnWeight
	case MiteRateMetric:
		return ColumnMiteRate
	case StrengthMetric:
		return ColumnStrength
	default:
		return ColumnWeight
	}
}
