package rate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		baseRate float64
		expected float64
	}{
		{
			name:     "Minimum Duration",
			duration: 30,
			baseRate: 7.5,
			expected: 6.5,
		},
		{
			name:     "Maximum Duration",
			duration: 365,
			baseRate: 7.5,
			expected: 9.0,
		},
		{
			name:     "Midpoint Duration",
			duration: 197.5,
			baseRate: 7.5,
			expected: 7.75,
		},
		{
			name:     "Duration Below Minimum Clamps",
			duration: 5,
			baseRate: 7.5,
			expected: 6.5,
		},
		{
			name:     "Duration Above Maximum Clamps",
			duration: 1000,
			baseRate: 7.5,
			expected: 9.0,
		},
		{
			name:     "Low Base Clamps To Floor",
			duration: 30,
			baseRate: 5.0,
			expected: 5.0,
		},
		{
			name:     "High Base Clamps To Ceiling",
			duration: 365,
			baseRate: 9.5,
			expected: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EffectiveRate(tt.duration, tt.baseRate), 1e-9)
		})
	}
}

func TestEffectiveRateMonotonicInDuration(t *testing.T) {
	prev := EffectiveRate(MinDuration, 7.5)
	for d := MinDuration + 1; d <= MaxDuration; d++ {
		current := EffectiveRate(float64(d), 7.5)
		assert.GreaterOrEqual(t, current, prev, "rate regressed at duration %d", d)
		prev = current
	}
}

func TestNewQuote(t *testing.T) {
	// 2.5 ETH over 90 days at base 7.5.
	q := NewQuote(2.5, 90, 7.5)

	assert.InDelta(t, 6.9478, q.Rate, 1e-4)
	assert.InDelta(t, 0.0428, q.Interest, 1e-4)
	assert.InDelta(t, 2.5428, q.Total, 1e-4)
	assert.InDelta(t, q.Total, Round4(2.5+q.Interest), 1e-9)
}

func TestNewQuoteTotalConsistency(t *testing.T) {
	amounts := []float64{0.1, 1, 2.5, 33.3333, 100}
	durations := []int{30, 90, 180, 365}

	for _, amount := range amounts {
		for _, duration := range durations {
			q := NewQuote(amount, duration, 7.5)
			assert.InDelta(t, Round4(amount+q.Interest), q.Total, 1e-9)
			assert.GreaterOrEqual(t, q.Rate, float64(MinRate))
			assert.LessOrEqual(t, q.Rate, float64(MaxRate))
		}
	}
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 1.2346, Round4(1.23456))
	assert.Equal(t, 1.2345, Round4(1.23454))
	assert.Equal(t, 0.0, Round4(0))
	assert.Equal(t, -1.2346, Round4(-1.23456))
}
