package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

const anomaliesPromptTemplate = `Analyze this inventory data for anomalies and unusual patterns.

Return a JSON object with exactly this structure:

{
  "anomalies": [
    {
      "sku": "string",
      "item_name": "string",
      "type": "demand_spike | demand_drop | trend_reversal | seasonal_deviation",
      "severity": "high | medium | low",
      "description": "specific explanation with numbers",
      "detected_date": "approximate YYYY-MM-DD",
      "recommendation": "what to do about it"
    }
  ],
  "total_anomalies": number,
  "health_score": 0_to_100
}

Only flag genuine anomalies — items where recent behavior significantly deviates from expected patterns.
Only return valid JSON, no markdown.

INVENTORY DATA:
%s`

// HandleAnomalies returns the AI anomaly report across all SKUs.
// GET /api/v1/anomalies
func HandleAnomalies(c *fiber.Ctx) error {
	if cached, ok := responseCache.Get("anomalies"); ok {
		return c.JSON(cached)
	}

	stats, err := allSkuStats(c.Context())
	if err != nil {
		log.Printf("Error fetching sku stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inventory data"})
	}
	if len(stats) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No inventory data available"})
	}

	prompt := fmt.Sprintf(anomaliesPromptTemplate, buildAllSkusContext(stats))
	raw, err := callLLM(c.Context(), prompt)
	if err != nil {
		log.Printf("LLM error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI analysis failed"})
	}

	var parsed fiber.Map
	if err := parseModelJSON(raw, &parsed); err != nil {
		return c.JSON(fiber.Map{
			"anomalies":       []interface{}{},
			"total_anomalies": 0,
			"health_score":    50,
			"raw":             raw,
		})
	}

	responseCache.Set("anomalies", parsed)
	return c.JSON(parsed)
}
