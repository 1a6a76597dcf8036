// Package rate prices a loan from its requested duration. The engine is a
// pure function so the quote shown before submission and the figures frozen
// into the persisted record always agree for the same duration.
package rate

import "math"

const (
	MinDuration = 30
	MaxDuration = 365

	MinRate = 5.0
	MaxRate = 10.0
)

// EffectiveRate maps a duration in days onto the base rate: one percent off
// at the 30-day floor rising linearly to 1.5 percent on at the 365-day
// ceiling, with the result held inside the 5-10 percent policy band
// regardless of the administrative base rate.
func EffectiveRate(duration, baseRate float64) float64 {
	clamped := math.Min(math.Max(duration, MinDuration), MaxDuration)
	t := (clamped - MinDuration) / (MaxDuration - MinDuration)
	adjustment := -1.0 + t*2.5
	return math.Min(math.Max(baseRate+adjustment, MinRate), MaxRate)
}

// Quote holds the figures frozen into a loan record at creation.
type Quote struct {
	Rate     float64
	Interest float64
	Total    float64
}

// NewQuote computes simple pro-rata interest at the effective rate, rounded
// to 4 decimals, keeping total exactly amount plus interest.
func NewQuote(amount float64, duration int, baseRate float64) Quote {
	r := EffectiveRate(float64(duration), baseRate)
	interest := Round4(amount * r / 100 * float64(duration) / 365)
	return Quote{
		Rate:     r,
		Interest: interest,
		Total:    Round4(amount + interest),
	}
}

func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
