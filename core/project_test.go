package core

import (
	"testing"
	"time"

	"github.com/apiarylab/hivetrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(colony string, date time.Time, weight *float64) schema.Entry {
	return schema.Entry{Colony: colony, Date: date, Weight: weight}
}

func allBounds() TimeBounds {
	return TimeBounds{End: day(2100, 1, 1)}
}

func stateFor(metric schema.MetricKind, colonies ...string) *schema.SelectionState {
	state := schema.NewSelectionState()
	state.SetMetric(metric)
	state.SelectColonies(colonies)
	return state
}

func TestProject_WeightDelta(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
		entry("Hive 1", day(2024, 4, 8), floatPtr(12.5)),
		entry("Hive 1", day(2024, 4, 15), floatPtr(11)),
	}}

	proj := Project(ds, stateFor(schema.WeightDeltaMetric, "Hive 1"), allBounds())

	// The first observation has no delta and its row is dropped.
	require.Len(t, proj.Rows, 2)
	assert.Equal(t, 2.5, proj.Rows[0].Value)
	assert.Equal(t, -1.5, proj.Rows[1].Value)
	assert.Equal(t, schema.ColumnWeight, proj.Column)
}

func TestProject_WeightDeltaZeroFill(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
		entry("Hive 1", day(2024, 4, 8), floatPtr(12.5)),
	}}

	state := stateFor(schema.WeightDeltaMetric, "Hive 1")
	state.SetZeroFill(true)
	proj := Project(ds, state, allBounds())

	// Zero-fill keeps the first observation as an explicit 0 row.
	require.Len(t, proj.Rows, 2)
	assert.Equal(t, 0.0, proj.Rows[0].Value)
	assert.Equal(t, 2.5, proj.Rows[1].Value)
}

func TestProject_WeightDeltaNullNeighbour(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
		entry("Hive 1", day(2024, 4, 8), nil),
		entry("Hive 1", day(2024, 4, 15), floatPtr(12)),
	}}

	proj := Project(ds, stateFor(schema.WeightDeltaMetric, "Hive 1"), allBounds())

	// A null weight voids the delta on both of its neighbouring rows.
	assert.Empty(t, proj.Rows)
	assert.Equal(t, []string{"Hive 1"}, proj.Missing)
}

func TestProject_NullWeightDropVersusZeroFill(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(30)),
		entry("Hive 1", day(2024, 4, 8), nil),
	}}

	dropped := Project(ds, stateFor(schema.WeightMetric, "Hive 1"), allBounds())
	require.Len(t, dropped.Rows, 1)
	assert.True(t, dropped.Rows[0].Date.Equal(day(2024, 4, 1)))

	state := stateFor(schema.WeightMetric, "Hive 1")
	state.SetZeroFill(true)
	filled := Project(ds, state, allBounds())
	require.Len(t, filled.Rows, 2)
	assert.Equal(t, 0.0, filled.Rows[1].Value)
}

func TestProject_NaturalOrdering(t *testing.T) {
	d := day(2024, 4, 1)
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 10", d, floatPtr(1)),
		entry("Hive 2", d, floatPtr(2)),
		entry("Hive 1", d, floatPtr(3)),
	}}

	proj := Project(ds, stateFor(schema.WeightMetric, "Hive 10", "Hive 2", "Hive 1"), allBounds())

	require.Len(t, proj.Rows, 3)
	assert.Equal(t, "Hive 1", proj.Rows[0].Colony)
	assert.Equal(t, "Hive 2", proj.Rows[1].Colony)
	assert.Equal(t, "Hive 10", proj.Rows[2].Colony)
	assert.Equal(t, []string{"Hive 1", "Hive 2", "Hive 10"}, proj.Colonies)
}

func TestProject_TimeBoundsFilter(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
		entry("Hive 1", day(2024, 5, 1), floatPtr(11)),
		entry("Hive 1", day(2024, 6, 1), floatPtr(12)),
	}}

	start := day(2024, 4, 15)
	bounds := TimeBounds{Start: &start, End: day(2024, 5, 2)}
	proj := Project(ds, stateFor(schema.WeightMetric, "Hive 1"), bounds)

	require.Len(t, proj.Rows, 1)
	assert.True(t, proj.Rows[0].Date.Equal(day(2024, 5, 1)))
}

func TestProject_MissingColonies(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
	}}

	// "Hive 9" was selected against an older dataset and no longer exists.
	proj := Project(ds, stateFor(schema.WeightMetric, "Hive 1", "Hive 9"), allBounds())

	require.Len(t, proj.Rows, 1)
	assert.Equal(t, []string{"Hive 1"}, proj.Colonies)
	assert.Equal(t, []string{"Hive 9"}, proj.Missing)
}

func TestProject_StrengthShift(t *testing.T) {
	e := entry("Hive 1", day(2024, 4, 1), nil)
	e.StrengthRating = floatPtr(schema.StrengthNormal)
	missing := entry("Hive 1", day(2024, 4, 8), nil)
	ds := &schema.Dataset{Entries: []schema.Entry{e, missing}}

	proj := Project(ds, stateFor(schema.StrengthMetric, "Hive 1"), allBounds())

	// Present ratings are shifted +1 for the chart axis; absent ones are
	// dropped, never shifted.
	require.Len(t, proj.Rows, 1)
	assert.Equal(t, 3.0, proj.Rows[0].Value)
}

func TestProject_MiteRate(t *testing.T) {
	e := entry("Hive 1", day(2024, 4, 1), nil)
	e.MiteRate = floatPtr(1.5)
	ds := &schema.Dataset{Entries: []schema.Entry{e}}

	proj := Project(ds, stateFor(schema.MiteRateMetric, "Hive 1"), allBounds())
	require.Len(t, proj.Rows, 1)
	assert.Equal(t, 1.5, proj.Rows[0].Value)
	assert.Equal(t, schema.ColumnMiteRate, proj.Column)
}

func TestProject_CompressedOrdinals(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
		entry("Hive 1", day(2024, 4, 20), floatPtr(11)),
		entry("Hive 2", day(2024, 4, 20), floatPtr(12)),
		entry("Hive 2", day(2024, 5, 9), floatPtr(13)),
	}}

	state := stateFor(schema.WeightMetric, "Hive 1", "Hive 2")
	state.SetCompression(true)
	proj := Project(ds, state, allBounds())

	require.Len(t, proj.Rows, 4)
	assert.True(t, proj.Compressed)

	// Distinct surviving dates get consecutive ordinals; a shared date
	// shares its ordinal across colonies.
	assert.Equal(t, 0, proj.Rows[0].Ordinal)
	assert.Equal(t, 1, proj.Rows[1].Ordinal)
	assert.Equal(t, 1, proj.Rows[2].Ordinal)
	assert.Equal(t, 2, proj.Rows[3].Ordinal)
}

func TestProject_UncompressedOrdinalsUnset(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
	}}

	proj := Project(ds, stateFor(schema.WeightMetric, "Hive 1"), allBounds())
	require.Len(t, proj.Rows, 1)
	assert.Equal(t, -1, proj.Rows[0].Ordinal)
}

func TestProject_EmptySelection(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
	}}

	proj := Project(ds, stateFor(schema.WeightMetric), allBounds())
	assert.True(t, proj.Empty())
	assert.Empty(t, proj.Colonies)
	assert.Empty(t, proj.Missing)
}

func TestProject_DoesNotMutateInputs(t *testing.T) {
	ds := &schema.Dataset{Entries: []schema.Entry{
		entry("Hive 1", day(2024, 4, 8), floatPtr(11)),
		entry("Hive 1", day(2024, 4, 1), floatPtr(10)),
	}}

	state := stateFor(schema.WeightMetric, "Hive 1")
	_ = Project(ds, state, allBounds())

	// Input order of the dataset stays untouched by the per-colony sort.
	assert.True(t, ds.Entries[0].Date.Equal(day(2024, 4, 8)))
	assert.Equal(t, []string{"Hive 1"}, state.Colonies())
}
