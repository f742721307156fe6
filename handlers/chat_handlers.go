package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"app/models"
)

const chatPromptTemplate = `A user is asking about their inventory. Answer their question based on the data below.
Be specific, use actual numbers from the data, and provide actionable advice.

Respond in JSON format:
{
  "answer": "your detailed answer here",
  "relevant_skus": ["list", "of", "mentioned", "skus"],
  "suggested_actions": ["action 1", "action 2"]
}

Only return valid JSON, no markdown.

INVENTORY DATA:
%s

USER QUESTION: %s`

// HandleChat answers natural-language questions about the inventory.
// POST /api/v1/chat
func HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No question provided"})
	}

	stats, err := allSkuStats(c.Context())
	if err != nil {
		log.Printf("Error fetching sku stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inventory data"})
	}

	prompt := fmt.Sprintf(chatPromptTemplate, buildAllSkusContext(stats), req.Question)
	raw, err := callLLM(c.Context(), prompt)
	if err != nil {
		log.Printf("LLM error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI analysis failed"})
	}

	var parsed fiber.Map
	if err := parseModelJSON(raw, &parsed); err != nil {
		answer := raw
		if answer == "" {
			answer = "Unable to process your question."
		}
		return c.JSON(fiber.Map{
			"answer":            answer,
			"relevant_skus":     []interface{}{},
			"suggested_actions": []interface{}{},
		})
	}

	return c.JSON(parsed)
}
