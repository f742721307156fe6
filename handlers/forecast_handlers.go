package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

const forecastPromptTemplate = `Based on this inventory data, forecast demand for the next 14 days.

Return a JSON object with exactly this structure:

{
  "sku": "%s",
  "item_name": "string",
  "forecast": [
    {"date": "YYYY-MM-DD", "predicted_demand": number, "lower_bound": number, "upper_bound": number}
  ],
  "reorder": {
    "recommended": true_or_false,
    "quantity": number,
    "urgency": "critical | high | medium | low",
    "order_by_date": "YYYY-MM-DD or null",
    "reason": "1-2 sentence explanation"
  },
  "anomaly": {
    "detected": true_or_false,
    "type": "demand_spike | demand_drop | trend_change | none",
    "severity": "high | medium | low | none",
    "detail": "explanation or empty string"
  },
  "trend_summary": "1 sentence about the demand trend",
  "safety_stock": number
}

Only return valid JSON, no markdown.

SKU DATA:
%s

LAST 30 DAYS ACTUAL DATA:
%s`

// HandleForecast returns a 14-day demand forecast for one SKU, with the
// actual trailing records attached for charting.
// GET /api/v1/forecast/:sku
func HandleForecast(c *fiber.Ctx) error {
	sku := c.Params("sku")

	detail, err := skuData(c.Context(), sku)
	if err != nil {
		log.Printf("Error fetching data for %s: %v", sku, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inventory data"})
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("SKU %s not found", sku)})
	}

	recent := detail.RecentDaily
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	recentJSON, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode daily data"})
	}

	prompt := fmt.Sprintf(forecastPromptTemplate, sku, buildSkuContext(detail), recentJSON)
	raw, err := callLLM(c.Context(), prompt)
	if err != nil {
		log.Printf("LLM error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI analysis failed"})
	}

	var parsed fiber.Map
	if err := parseModelJSON(raw, &parsed); err != nil {
		return c.JSON(fiber.Map{
			"sku":      sku,
			"forecast": []interface{}{},
			"error":    "Unable to parse AI response",
			"raw":      raw,
		})
	}

	// Attach actual recent data for charting
	parsed["actual_data"] = recent
	return c.JSON(parsed)
}
