package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

const insightsPromptTemplate = `Analyze this inventory data and return a JSON object with exactly this structure:

{
  "recommendations": [
    {
      "sku": "string",
      "item_name": "string",
      "type": "reorder | anomaly | overstock",
      "urgency": "critical | high | medium | low",
      "title": "short action title (max 10 words)",
      "description": "1-2 sentence explanation with specific numbers",
      "suggested_action": "specific action to take",
      "quantity": number_or_null,
      "confidence": 0.0_to_1.0
    }
  ],
  "summary": "1 sentence overall inventory health summary"
}

Return the top 5 most important recommendations sorted by urgency.
Only return valid JSON, no markdown.

INVENTORY DATA:
%s`

// HandleInsights returns the top AI recommendations across all SKUs.
// GET /api/v1/insights
func HandleInsights(c *fiber.Ctx) error {
	if cached, ok := responseCache.Get("insights"); ok {
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

	prompt := fmt.Sprintf(insightsPromptTemplate, buildAllSkusContext(stats))
	raw, err := callLLM(c.Context(), prompt)
	if err != nil {
		log.Printf("LLM error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI analysis failed"})
	}

	var parsed fiber.Map
	if err := parseModelJSON(raw, &parsed); err != nil {
		return c.JSON(fiber.Map{
			"recommendations": []interface{}{},
			"summary":         "Unable to parse AI response",
			"raw":             raw,
		})
	}

	responseCache.Set("insights", parsed)
	return c.JSON(parsed)
}
