package generator

import (
	"fmt"
	"math/rand"

	"app/models"
)

// Anomaly injection bounds: spikes start no earlier than index 30 (past the
// stock warm-up) and no later than len-6, so a spike always has room to run
// its full duration.
const (
	anomalyMinStart  = 30
	anomalyTailGuard = 5
)

// InjectAnomalies overlays 8-15 demand spikes on a finished series. Each
// spike multiplies qty_sold by a factor in [2.5, 5.0) for 1-3 consecutive
// days and sets the anomaly flag. Stock levels are left as the synthesizer
// computed them; the overlay touches demand only. Dates are never created,
// removed or reordered.
//
// Returns ErrSeriesTooShort when the series cannot hold enough distinct
// spike positions.
func InjectAnomalies(series []models.DailyRecord, rng *rand.Rand) error {
	n := 8 + rng.Intn(8) // uniform over [8, 15]

	poolSize := len(series) - anomalyTailGuard - anomalyMinStart
	if poolSize < n {
		return fmt.Errorf("%w: %d records, need %d spike positions", ErrSeriesTooShort, len(series), n)
	}

	// Distinct start positions, uniformly from [anomalyMinStart, len-6].
	perm := rng.Perm(poolSize)
	for _, offset := range perm[:n] {
		idx := anomalyMinStart + offset
		multiplier := 2.5 + 2.5*rng.Float64()
		duration := 1 + rng.Intn(3)
		for d := 0; d < duration; d++ {
			if idx+d >= len(series) {
				break
			}
			rec := &series[idx+d]
			rec.QtySold = int(float64(rec.QtySold) * multiplier)
			rec.IsAnomaly = true
		}
	}

	return nil
}
