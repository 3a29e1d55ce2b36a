package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"dot decimal", "32.5", 32.5, true},
		{"comma decimal", "32,5", 32.5, true},
		{"integer", "7", 7, true},
		{"negative comma decimal", "-1,25", -1.25, true},
		{"padded", "  12.0  ", 12, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"text", "viel", 0, false},
		{"mixed separators left alone", "1,234.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := parseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestDeriveMiteRate(t *testing.T) {
	tests := []struct {
		name     string
		count    *float64
		days     *float64
		expected *float64
	}{
		{"nil count yields nil", nil, floatPtr(7), nil},
		{"nil days clamps to one", floatPtr(10), nil, floatPtr(10)},
		{"zero days clamps to one", floatPtr(10), floatPtr(0), floatPtr(10)},
		{"negative days clamps to one", floatPtr(10), floatPtr(-3), floatPtr(10)},
		{"normal division", floatPtr(10), floatPtr(5), floatPtr(2)},
		{"fractional result", floatPtr(7), floatPtr(14), floatPtr(0.5)},
		{"zero count is a valid rate", floatPtr(0), floatPtr(7), floatPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := DeriveMiteRate(tt.count, tt.days)
			if tt.expected == nil {
				assert.Nil(t, rate)
				return
			}
			require.NotNil(t, rate)
			assert.Equal(t, *tt.expected, *rate)
		})
	}
}
