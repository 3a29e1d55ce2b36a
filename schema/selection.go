package schema

// SelectionState holds the user's current colony, metric, time-range and
// display-toggle choices for the single active session. It is mutated only
// through the named transitions below, which keeps the projector a pure
// function of (dataset, state, bounds).
//
// The state survives dataset reloads. Colonies that disappear from a newly
// loaded dataset are NOT removed here; the projector reports them as
// missing instead. Lookups keyed by colony must therefore tolerate names
// that no longer exist in the data.
type SelectionState struct {
	colonies []string // insertion order defines the stable color mapping
	metric   MetricKind
	rng      RangeToken
	zeroFill bool
	compress bool
}

// NewSelectionState returns a SelectionState with the default metric and
// an unbounded time range.
func NewSelectionState() *SelectionState {
	return &SelectionState{
		metric: WeightMetric,
		rng:    RangeAll,
	}
}

// ToggleColony adds the colony to the selection if absent, or removes it if
// present. It reports whether the colony is selected afterwards.
func (s *SelectionState) ToggleColony(name string) bool {
	for i, c := range s.colonies {
		if c == name {
			s.colonies = append(s.colonies[:i], s.colonies[i+1:]...)
			return false
		}
	}
	s.colonies = append(s.colonies, name)
	return true
}

// SelectColonies replaces the selection with the given names, preserving
// their order and dropping duplicates.
func (s *SelectionState) SelectColonies(names []string) {
	s.colonies = s.colonies[:0]
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		s.colonies = append(s.colonies, n)
	}
}

// Colonies returns a copy of the selected colonies in insertion order.
func (s *SelectionState) Colonies() []string {
	out := make([]string, len(s.colonies))
	copy(out, s.colonies)
	return out
}

// Selected reports whether the colony is currently selected.
func (s *SelectionState) Selected(name string) bool {
	for _, c := range s.colonies {
		if c == name {
			return true
		}
	}
	return false
}

// ColorIndex returns the stable palette slot for a selected colony, derived
// from insertion order. The second return is false for colonies that are
// not selected, including stale names left over from a previous dataset;
// callers must not assume the colony exists in the current data.
func (s *SelectionState) ColorIndex(name string) (int, bool) {
	for i, c := range s.colonies {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// SetMetric sets the active metric.
func (s *SelectionState) SetMetric(m MetricKind) { s.metric = m }

// Metric returns the active metric.
func (s *SelectionState) Metric() MetricKind { return s.metric }

// SetTimeRange sets the active time-range token.
func (s *SelectionState) SetTimeRange(t RangeToken) { s.rng = t }

// TimeRange returns the active time-range token.
func (s *SelectionState) TimeRange() RangeToken { return s.rng }

// SetZeroFill sets the zero-fill display toggle.
func (s *SelectionState) SetZeroFill(on bool) { s.zeroFill = on }

// ZeroFill returns the zero-fill display toggle.
func (s *SelectionState) ZeroFill() bool { return s.zeroFill }

// SetCompression sets the timeline-compression display toggle.
func (s *SelectionState) SetCompression(on bool) { s.compress = on }

// CompressTimeline returns the timeline-compression display toggle.
func (s *SelectionState) CompressTimeline() bool { return s.compress }
