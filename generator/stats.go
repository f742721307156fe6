package generator

import (
	"math"
	"strconv"

	"app/models"
)

// Sentinel horizon reported when the 7-day average demand is zero and no
// stockout is foreseeable.
const noStockoutHorizon = 999

// ComputeStats derives the statistical snapshot for a finished series. It is
// a pure function of its inputs: no randomness, no external state. Numeric
// degeneracies (empty windows, zero denominators) resolve to the documented
// sentinels instead of errors.
func ComputeStats(series []models.DailyRecord, leadTimeDays int) models.SkuStats {
	sold := make([]float64, len(series))
	for i, r := range series {
		sold[i] = float64(r.QtySold)
	}

	avg7 := mean(tail(sold, 7))
	avg30 := mean(tail(sold, 30))
	avg90 := mean(tail(sold, 90))

	stats := models.SkuStats{
		AvgDailyDemand7d:  roundTo(avg7, 2),
		AvgDailyDemand30d: roundTo(avg30, 2),
		AvgDailyDemand90d: roundTo(avg90, 2),
		StdDeviation30d:   roundTo(stdDev(tail(sold, 30)), 2),
		TrendSlope90d:     roundTo(slope(tail(sold, 90)), 4),
		SeasonalFactors:   seasonalIndex(series, sold),
		LeadTimeDays:      leadTimeDays,
	}

	for _, r := range tail(series, 30) {
		if r.IsAnomaly {
			stats.RecentAnomalyCount++
		}
	}

	if len(series) > 0 {
		stats.CurrentStock = series[len(series)-1].StockLevel
	}

	stats.DaysUntilStockout = noStockoutHorizon
	if avg7 > 0 {
		stats.DaysUntilStockout = int(float64(stats.CurrentStock) / avg7)
	}

	stats.YoYChangePct = roundTo(yoyChange(sold, avg30), 1)

	return stats
}

// stdDev is the population standard deviation (divide by N, not N-1).
func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	variance := 0.0
	for _, x := range xs {
		variance += (x - m) * (x - m)
	}
	return math.Sqrt(variance / float64(len(xs)))
}

// slope is the ordinary-least-squares slope of xs against its indices,
// zero when fewer than 2 points exist or the denominator degenerates.
func slope(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	xMean := float64(n-1) / 2
	yMean := mean(xs)
	num, den := 0.0, 0.0
	for i, y := range xs {
		num += (float64(i) - xMean) * (y - yMean)
		den += (float64(i) - xMean) * (float64(i) - xMean)
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// seasonalIndex maps each calendar month "1".."12" to the ratio of that
// month's average demand over the overall average. Months without
// observations fall back to 1.0, as do all months when the overall average
// is zero.
func seasonalIndex(series []models.DailyRecord, sold []float64) map[string]float64 {
	sums := make(map[int]float64, 12)
	counts := make(map[int]int, 12)
	for i, r := range series {
		day, err := r.Day()
		if err != nil {
			continue
		}
		m := int(day.Month())
		sums[m] += sold[i]
		counts[m]++
	}

	overall := mean(sold)
	factors := make(map[string]float64, 12)
	for m := 1; m <= 12; m++ {
		ratio := 1.0
		if counts[m] > 0 && overall > 0 {
			ratio = roundTo(sums[m]/float64(counts[m])/overall, 3)
		}
		factors[strconv.Itoa(m)] = ratio
	}
	return factors
}

// yoyChange compares the trailing-30-day average against the 30-day window
// ending 365 days earlier. Sentinel 0 when that window is incomplete or its
// average is zero.
func yoyChange(sold []float64, avg30 float64) float64 {
	last := len(sold) - 1
	lyStart := last - 365 - 30
	lyEnd := last - 365
	if lyStart < 0 || lyEnd <= lyStart {
		return 0
	}
	lyAvg := mean(sold[lyStart:lyEnd])
	if lyAvg <= 0 {
		return 0
	}
	return (avg30 - lyAvg) / lyAvg * 100
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func tail[T any](xs []T, n int) []T {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
