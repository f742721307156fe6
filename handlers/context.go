package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"app/models"
)

// urgencyFor classifies a stockout horizon into the urgency ladder the
// system prompt defines.
func urgencyFor(daysUntilStockout int) string {
	switch {
	case daysUntilStockout < 3:
		return "critical"
	case daysUntilStockout < 7:
		return "high"
	case daysUntilStockout < 14:
		return "medium"
	default:
		return "low"
	}
}

// buildSkuContext renders the text context for a single SKU.
func buildSkuContext(d *models.SkuDetail) string {
	months := make([]int, 0, len(d.SeasonalFactors))
	for m := range d.SeasonalFactors {
		if n, err := strconv.Atoi(m); err == nil {
			months = append(months, n)
		}
	}
	sort.Ints(months)

	seasonal := make([]string, 0, len(months))
	for _, m := range months {
		seasonal = append(seasonal, fmt.Sprintf("Month %d: %.2f", m, d.SeasonalFactors[strconv.Itoa(m)]))
	}

	now := time.Now()
	return strings.TrimSpace(fmt.Sprintf(`
SKU: %s
Name: %s
Category: %s
Location: %s
Unit Cost: $%.2f
Sell Price: $%.2f
Lead Time: %d days

Current Stock: %d units
Days Until Stockout: %d

Avg Daily Demand (7d): %.1f
Avg Daily Demand (30d): %.1f
Avg Daily Demand (90d): %.1f
Std Deviation (30d): %.1f
Trend Slope (90d): %.4f (positive = growing demand)
Year-over-Year Change: %.1f%%

Seasonal Factors: %s
Recent Anomalies (30d): %d

Today's Date: %s
Current Month: %d
`,
		d.SKU, d.Name, d.Category, d.Location, d.UnitCost, d.SellPrice, d.LeadTimeDays,
		d.CurrentStock, d.DaysUntilStockout,
		d.AvgDailyDemand7d, d.AvgDailyDemand30d, d.AvgDailyDemand90d,
		d.StdDeviation30d, d.TrendSlope90d, d.YoYChangePct,
		strings.Join(seasonal, ", "), d.RecentAnomalyCount,
		now.Format("2006-01-02"), int(now.Month()),
	))
}

// buildAllSkusContext renders a one-line-per-SKU summary context.
func buildAllSkusContext(overviews []models.SkuOverview) string {
	lines := make([]string, 0, len(overviews))
	for _, s := range overviews {
		lines = append(lines, fmt.Sprintf(
			"- %s (%s): stock=%d, avg_demand_7d=%.1f, days_to_stockout=%d, urgency=%s, trend=%.4f, yoy=%.1f%%, anomalies_30d=%d",
			s.SKU, s.Name, s.CurrentStock, s.AvgDailyDemand7d, s.DaysUntilStockout,
			urgencyFor(s.DaysUntilStockout), s.TrendSlope90d, s.YoYChangePct, s.RecentAnomalyCount,
		))
	}
	return strings.Join(lines, "\n")
}
