package generator

import (
	"math"
	"math/rand"
	"time"

	"app/models"
)

const dateLayout = "2006-01-02"

// Synthesize walks [start, end] one calendar day at a time and produces the
// full DailyRecord sequence for one product. Demand combines the seasonal,
// weekday and trend factors with Gaussian noise; stock is depleted by sales
// and refilled by lead-time-aware replenishment. All randomness comes from
// rng, so a fixed seed reproduces the sequence bit for bit.
func Synthesize(p models.ProductProfile, start, end time.Time, rng *rand.Rand) []models.DailyRecord {
	if end.Before(start) {
		return nil
	}

	base := p.BaseDailyDemand
	days := int(end.Sub(start).Hours()/24) + 1
	records := make([]models.DailyRecord, 0, days)

	// Seed stock with roughly one month of cover.
	stock := int(base * 30)

	day := start
	for dayIndex := 0; dayIndex < days; dayIndex++ {
		sf := SeasonalFactor(day, p.SeasonalPeakMonth, p.SeasonalAmplitude)
		wf := WeekdayFactor(day, rng)
		tf := TrendFactor(dayIndex, p.Trend)

		rawDemand := base * sf * wf * tf
		noise := rng.NormFloat64() * base * 0.15
		qtySold := int(math.Round(rawDemand + noise))
		if qtySold < 0 {
			qtySold = 0
		}

		// Order when stock falls below 1.2x the demand expected over the
		// lead time; the restock lands immediately, approximating
		// lead-time-aligned ordering without an explicit order pipeline.
		qtyReceived := 0
		if float64(stock) < base*float64(p.LeadTimeDays)*1.2 {
			qtyReceived = int(base * (14 + 14*rng.Float64()) * tf)
		}

		stock = stock + qtyReceived - qtySold
		if stock < 0 {
			// Can't sell what you don't have.
			qtySold += stock
			stock = 0
		}

		records = append(records, models.DailyRecord{
			Date:        day.Format(dateLayout),
			QtySold:     qtySold,
			QtyReceived: qtyReceived,
			StockLevel:  stock,
			IsAnomaly:   false,
		})

		day = day.AddDate(0, 0, 1)
	}

	return records
}
