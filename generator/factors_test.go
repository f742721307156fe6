package generator_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"app/generator"
)

func TestSeasonalFactorPeakAndTrough(t *testing.T) {
	peak := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	if got := generator.SeasonalFactor(peak, 11, 0.4); math.Abs(got-1.4) > 1e-9 {
		t.Errorf("factor at peak month = %v; want 1.4", got)
	}

	// Six months out the cosine bottoms out at 1 - amplitude.
	trough := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	if got := generator.SeasonalFactor(trough, 11, 0.4); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("factor at trough month = %v; want 0.6", got)
	}
}

func TestSeasonalFactorPositiveForValidAmplitude(t *testing.T) {
	for month := 1; month <= 12; month++ {
		day := time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if got := generator.SeasonalFactor(day, 7, 1.0); got < 0 {
			t.Errorf("month %d: factor = %v; want non-negative", month, got)
		}
	}
}

func TestWeekdayFactorRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)   // Monday
	saturday := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC) // Saturday

	for i := 0; i < 200; i++ {
		if f := generator.WeekdayFactor(monday, rng); f < 1.0 || f >= 1.1 {
			t.Fatalf("weekday factor %v out of [1.0, 1.1)", f)
		}
		if f := generator.WeekdayFactor(saturday, rng); f < 0.3 || f >= 0.5 {
			t.Fatalf("weekend factor %v out of [0.3, 0.5)", f)
		}
	}
}

func TestTrendFactor(t *testing.T) {
	if got := generator.TrendFactor(0, 0.005); got != 1.0 {
		t.Errorf("factor at day 0 = %v; want 1.0", got)
	}
	if got := generator.TrendFactor(100, 0.003); math.Abs(got-math.Exp(0.3)) > 1e-9 {
		t.Errorf("factor at day 100 = %v; want e^0.3", got)
	}
	if got := generator.TrendFactor(100, -0.003); got >= 1.0 {
		t.Errorf("negative trend should decay, got %v", got)
	}
}
