package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenialRate(t *testing.T) {
	tests := []struct {
		name     string
		denied   int64
		total    int64
		expected *float64
	}{
		{
			name:     "zero total returns nil",
			denied:   0,
			total:    0,
			expected: nil,
		},
		{
			name:     "no denials",
			denied:   0,
			total:    10,
			expected: floatPtr(0),
		},
		{
			name:     "partial denials",
			denied:   3,
			total:    10,
			expected: floatPtr(0.3),
		},
		{
			name:     "all denied",
			denied:   7,
			total:    7,
			expected: floatPtr(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := DenialRate(tt.denied, tt.total)
			if tt.expected == nil {
				assert.Nil(t, rate)
				return
			}
			require.NotNil(t, rate)
			assert.InDelta(t, *tt.expected, *rate, 1e-9)
		})
	}
}

func TestDenialRate_Bounds(t *testing.T) {
	for denied := int64(0); denied <= 5; denied++ {
		rate := DenialRate(denied, 5)
		require.NotNil(t, rate)
		assert.GreaterOrEqual(t, *rate, 0.0)
		assert.LessOrEqual(t, *rate, 1.0)
	}
}

func TestCodeSummary_NilRateMarshalsAsNull(t *testing.T) {
	summary := CodeSummary{CPTCode: "99213", TotalClaims: 0, DeniedClaims: 0, DenialRate: nil}

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"denial_rate":null`)
}

func floatPtr(v float64) *float64 {
	return &v
}
