package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// --- Core Models ---

// ProductProfile is the static configuration describing one product's
// baseline demand behavior. Immutable once defined.
type ProductProfile struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Location          string  `json:"location"`
	UnitCost          float64 `json:"unit_cost"`
	SellPrice         float64 `json:"sell_price"`
	LeadTimeDays      int     `json:"lead_time_days"`
	BaseDailyDemand   float64 `json:"base_daily_demand"`
	Trend             float64 `json:"trend"`
	SeasonalPeakMonth int     `json:"seasonal_peak_month"`
	SeasonalAmplitude float64 `json:"seasonal_amplitude"`
}

// Metadata returns the subset of profile fields exposed to downstream
// consumers. The demand-shape parameters stay internal to the generator.
func (p ProductProfile) Metadata() ProductMetadata {
	return ProductMetadata{
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		Location:     p.Location,
		UnitCost:     p.UnitCost,
		SellPrice:    p.SellPrice,
		LeadTimeDays: p.LeadTimeDays,
	}
}

// ProductMetadata is the "metadata" section of a dataset entry.
type ProductMetadata struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	UnitCost     float64 `json:"unit_cost"`
	SellPrice    float64 `json:"sell_price"`
	LeadTimeDays int     `json:"lead_time_days"`
}

// DailyRecord is one day of simulated sales and stock movement for a product.
type DailyRecord struct {
	Date        string `json:"date"` // YYYY-MM-DD
	QtySold     int    `json:"qty_sold"`
	QtyReceived int    `json:"qty_received"`
	StockLevel  int    `json:"stock_level"`
	IsAnomaly   bool   `json:"is_anomaly"`
}

// Day parses the record's calendar date.
func (r DailyRecord) Day() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

// SkuStats is the read-only statistical snapshot computed once per finished
// series. Field names are part of the wire format consumed by the reporting
// layer and must not change.
type SkuStats struct {
	AvgDailyDemand7d   float64            `json:"avg_daily_demand_7d"`
	AvgDailyDemand30d  float64            `json:"avg_daily_demand_30d"`
	AvgDailyDemand90d  float64            `json:"avg_daily_demand_90d"`
	StdDeviation30d    float64            `json:"std_deviation_30d"`
	TrendSlope90d      float64            `json:"trend_slope_90d"`
	SeasonalFactors    map[string]float64 `json:"seasonal_factors"` // month "1".."12" -> ratio
	CurrentStock       int                `json:"current_stock"`
	DaysUntilStockout  int                `json:"days_until_stockout"`
	RecentAnomalyCount int                `json:"recent_anomaly_count"`
	YoYChangePct       float64            `json:"yoy_change_pct"`
	LeadTimeDays       int                `json:"lead_time_days"`
}

// SkuEntry is one product's slice of the generated dataset.
type SkuEntry struct {
	Metadata  ProductMetadata `json:"metadata"`
	Stats     SkuStats        `json:"stats"`
	DailyData []DailyRecord   `json:"daily_data"`
}

// Dataset maps product identifier to its generated entry. Produced once per
// generation run and treated as an immutable output artifact.
type Dataset map[string]*SkuEntry
