package models

// ChatRequest defines the structure for requests to the inventory Q&A endpoint.
type ChatRequest struct {
	Question string `json:"question"`
}

// SkuOverview flattens metadata + stats for one SKU, the shape the prompt
// builders and the /insights and /anomalies endpoints work with.
// SkuStats already carries lead_time_days, so only the remaining metadata
// fields are repeated here.
type SkuOverview struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	UnitCost  float64 `json:"unit_cost"`
	SellPrice float64 `json:"sell_price"`
	SkuStats
}

// SkuDetail is the full picture for a single SKU: overview plus the trailing
// daily records used for charting and forecasting.
type SkuDetail struct {
	SkuOverview
	RecentDaily []DailyRecord `json:"recent_daily"`
}
