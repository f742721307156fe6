package generator

import (
	"math"
	"math/rand"
	"time"
)

// SeasonalFactor returns a cosine-based demand multiplier centered on
// peakMonth: 1 + amplitude*cos(2*pi*(month-peak)/12). Deterministic, and
// always positive while amplitude <= 1.
func SeasonalFactor(day time.Time, peakMonth int, amplitude float64) float64 {
	monthAngle := float64(int(day.Month())-peakMonth) * (2 * math.Pi / 12)
	return 1.0 + amplitude*math.Cos(monthAngle)
}

// WeekdayFactor returns a demand multiplier in [1.0, 1.1) for Mon-Fri and
// [0.3, 0.5) for weekends. The jitter term draws from rng.
func WeekdayFactor(day time.Time, rng *rand.Rand) float64 {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return 0.3 + 0.2*rng.Float64()
	default:
		return 1.0 + 0.1*rng.Float64()
	}
}

// TrendFactor returns the exponential growth/decay multiplier exp(trend*i),
// anchored at day index 0.
func TrendFactor(dayIndex int, trend float64) float64 {
	return math.Exp(trend * float64(dayIndex))
}
