package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelectionState_Defaults(t *testing.T) {
	state := NewSelectionState()
	assert.Empty(t, state.Colonies())
	assert.Equal(t, WeightMetric, state.Metric())
	assert.Equal(t, RangeAll, state.TimeRange())
	assert.False(t, state.ZeroFill())
	assert.False(t, state.CompressTimeline())
}

func TestToggleColony(t *testing.T) {
	state := NewSelectionState()

	assert.True(t, state.ToggleColony("Hive 1"))
	assert.True(t, state.ToggleColony("Hive 2"))
	assert.Equal(t, []string{"Hive 1", "Hive 2"}, state.Colonies())
	assert.True(t, state.Selected("Hive 1"))

	// Toggling again removes, and the rest keeps its slot order.
	assert.False(t, state.ToggleColony("Hive 1"))
	assert.False(t, state.Selected("Hive 1"))
	assert.Equal(t, []string{"Hive 2"}, state.Colonies())
}

func TestSelectColonies_DropsDuplicatesAndBlanks(t *testing.T) {
	state := NewSelectionState()
	state.SelectColonies([]string{"Hive 2", "", "Hive 1", "Hive 2"})
	assert.Equal(t, []string{"Hive 2", "Hive 1"}, state.Colonies())

	// Replacement, not accumulation.
	state.SelectColonies([]string{"Hive 3"})
	assert.Equal(t, []string{"Hive 3"}, state.Colonies())
}

func TestColorIndex(t *testing.T) {
	state := NewSelectionState()
	state.SelectColonies([]string{"Hive 2", "Hive 1"})

	idx, ok := state.ColorIndex("Hive 2")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = state.ColorIndex("Hive 1")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	// Stale colonies from a previous dataset are not selected.
	_, ok = state.ColorIndex("Hive 9")
	assert.False(t, ok)

	// Slots stay stable when a colony in front is removed.
	state.ToggleColony("Hive 2")
	idx, ok = state.ColorIndex("Hive 1")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestColonies_ReturnsCopy(t *testing.T) {
	state := NewSelectionState()
	state.SelectColonies([]string{"Hive 1"})

	out := state.Colonies()
	out[0] = "mutated"
	assert.Equal(t, []string{"Hive 1"}, state.Colonies())
}

func TestSelectionState_Setters(t *testing.T) {
	state := NewSelectionState()
	state.SetMetric(MiteRateMetric)
	state.SetTimeRange(Range30Days)
	state.SetZeroFill(true)
	state.SetCompression(true)

	assert.Equal(t, MiteRateMetric, state.Metric())
	assert.Equal(t, Range30Days, state.TimeRange())
	assert.True(t, state.ZeroFill())
	assert.True(t, state.CompressTimeline())
}
