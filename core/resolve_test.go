package core

import (
	"errors"
	"testing"

	"github.com/apiarylab/hivetrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumns_FullHeader(t *testing.T) {
	header := []string{
		"Stockname",
		"Datum des Eintrags",
		"Gewicht",
		"Gezählte Milben (Gemülldiagnose)",
		"Zählzeitraum in Tagen",
		"Anzahl besetzte Waben",
		"Bewertung Volksstärke",
	}

	rs, err := ResolveColumns(header)
	require.NoError(t, err)

	assert.Equal(t, 0, rs.Index[schema.ColumnColony])
	assert.Equal(t, 1, rs.Index[schema.ColumnDate])
	assert.Equal(t, 2, rs.Index[schema.ColumnWeight])
	assert.Equal(t, 3, rs.Index[schema.ColumnMiteCount])
	assert.Equal(t, 4, rs.Index[schema.ColumnMiteDays])
	assert.Equal(t, 5, rs.Index[schema.ColumnCombOccupied])
	assert.Equal(t, 6, rs.Index[schema.ColumnStrength])
	assert.Empty(t, rs.Dropped)
	assert.Equal(t, "Gezählte Milben (Gemülldiagnose)", rs.Sources[schema.ColumnMiteCount])
}

func TestResolveColumns_OrderIndependent(t *testing.T) {
	forward := []string{"Stockname", "Datum des Eintrags", "Gewicht", "Bewertung Volksstärke"}
	backward := []string{"Bewertung Volksstärke", "Gewicht", "Datum des Eintrags", "Stockname"}

	fwd, err := ResolveColumns(forward)
	require.NoError(t, err)
	bwd, err := ResolveColumns(backward)
	require.NoError(t, err)

	// Same canonical set resolves regardless of header order.
	assert.Len(t, bwd.Index, len(fwd.Index))
	for col := range fwd.Index {
		_, ok := bwd.Index[col]
		assert.True(t, ok, "column %s should resolve in both orders", col)
	}
}

func TestResolveColumns_DuplicateLeftmostWins(t *testing.T) {
	header := []string{
		"Stockname",
		"Datum des Eintrags",
		"Gezählte Milben (alt)",
		"Gezählte Milben (neu)",
	}

	rs, err := ResolveColumns(header)
	require.NoError(t, err)

	assert.Equal(t, 2, rs.Index[schema.ColumnMiteCount])
	assert.Equal(t, "Gezählte Milben (alt)", rs.Sources[schema.ColumnMiteCount])
	assert.Equal(t, []string{"Gezählte Milben (neu)"}, rs.Dropped)
}

func TestResolveColumns_MissingMandatory(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		missing string
	}{
		{
			name:    "no colony column",
			header:  []string{"Datum des Eintrags", "Gewicht"},
			missing: "Stockname",
		},
		{
			name:    "no date column",
			header:  []string{"Stockname", "Gewicht"},
			missing: "Datum des Eintrags",
		},
		{
			name:    "substring of colony name is not enough",
			header:  []string{"Stockname alt", "Datum des Eintrags"},
			missing: "Stockname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := ResolveColumns(tt.header)
			assert.Nil(t, rs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, schema.ErrSchema))

			var schemaErr *schema.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.missing, schemaErr.Missing)
		})
	}
}

func TestClassifyColumn_SubstringRules(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target schema.Column
		match  bool
	}{
		{"mite count variant", "Gezählte Milben pro Tag", schema.ColumnMiteCount, true},
		{"mite days variant", "Zählzeitraum (Tage)", schema.ColumnMiteDays, true},
		{"comb occupied variant", "davon besetzte Waben", schema.ColumnCombOccupied, true},
		{"strength with Volk", "Bewertung Volksstärke", schema.ColumnStrength, true},
		{"strength with Stärke only", "Bewertung der Stärke", schema.ColumnStrength, true},
		{"Bewertung alone is ambiguous", "Bewertung Honigertrag", "", false},
		{"case sensitive", "gezählte milben", "", false},
		{"unrelated column", "Bemerkung", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := classifyColumn(tt.input)
			assert.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.target, target)
			}
		})
	}
}
