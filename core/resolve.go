package core

import (
	"strings"

	"github.com/apiarylab/hivetrend/schema"
)

// Mandatory and well-known source columns, matched by exact trimmed name.
// These are the stable names of the KIM export format.
const (
	ColonySourceColumn = "Stockname"
	DateSourceColumn   = "Datum des Eintrags"
	WeightSourceColumn = "Gewicht"
)

// substringRule renames a source column to a canonical name when the
// column name contains every marker, plus at least one of anyOf when that
// list is non-empty. Matching is case-sensitive on trimmed names.
type substringRule struct {
	markers []string
	anyOf   []string
	target  schema.Column
}

// resolveRules is the declarative rule table for the optional columns.
// The rules form a set: evaluation order over rules does not matter
// because no two rules share a target.
var resolveRules = []substringRule{
	{markers: []string{"Gezählte", "Milben"}, target: schema.ColumnMiteCount},
	{markers: []string{"Zählzeitraum", "Tage"}, target: schema.ColumnMiteDays},
	{markers: []string{"besetzte", "Waben"}, target: schema.ColumnCombOccupied},
	{markers: []string{"Bewertung"}, anyOf: []string{"Volk", "Stärke"}, target: schema.ColumnStrength},
}

func (r *substringRule) matches(name string) bool {
	for _, m := range r.markers {
		if !strings.Contains(name, m) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, m := range r.anyOf {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// ResolvedSchema maps canonical columns to their header index and the
// source names they were resolved from.
type ResolvedSchema struct {
	Index   map[schema.Column]int
	Sources map[schema.Column]string
	Dropped []string // source columns discarded because an earlier column already claimed the canonical name
}

// ResolveColumns maps the source header onto the canonical schema. The
// colony and date columns are mandatory; their absence is a SchemaError
// and the load halts. When several source columns resolve to the same
// canonical name, only the leftmost is retained; the rest are reported in
// Dropped, never merged.
func ResolveColumns(header []string) (*ResolvedSchema, error) {
	rs := &ResolvedSchema{
		Index:   make(map[schema.Column]int),
		Sources: make(map[schema.Column]string),
	}

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		target, ok := classifyColumn(name)
		if !ok {
			continue
		}
		if _, taken := rs.Index[target]; taken {
			rs.Dropped = append(rs.Dropped, name)
			continue
		}
		rs.Index[target] = i
		rs.Sources[target] = name
	}

	if _, ok := rs.Index[schema.ColumnColony]; !ok {
		return nil, &schema.SchemaError{Missing: ColonySourceColumn}
	}
	if _, ok := rs.Index[schema.ColumnDate]; !ok {
		return nil, &schema.SchemaError{Missing: DateSourceColumn}
	}
	return rs, nil
}

// classifyColumn maps one source column name to its canonical column.
func classifyColumn(name string) (schema.Column, bool) {
	switch name {
	case ColonySourceColumn:
		return schema.ColumnColony, true
	case DateSourceColumn:
		return schema.ColumnDate, true
	case WeightSourceColumn:
		return schema.ColumnWeight, true
	}
	for i := range resolveRules {
		if resolveRules[i].matches(name) {
			return resolveRules[i].target, true
		}
	}
	return "", false
}
