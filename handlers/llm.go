package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/utils"
)

const systemPrompt = `You are an expert inventory optimization assistant.
You analyze inventory data and provide actionable recommendations.

IMPORTANT RULES:
- Always respond in valid JSON format
- Be specific with numbers, dates, and quantities
- Consider lead times when making reorder recommendations
- Flag anomalies when demand deviates significantly from baseline
- Use seasonal patterns to improve forecast accuracy
- Calculate safety stock as: 1.65 × std_deviation × sqrt(lead_time_days)
- Urgency levels: "critical" (stockout in <3 days), "high" (<7 days), "medium" (<14 days), "low" (>14 days)
`

// callLLM sends a prompt to Gemini and returns the response text.
func callLLM(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	modelName := config.AppConfig.GeminiModel
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(2000)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	return fmt.Sprint(resp.Candidates[0].Content.Parts[0]), nil
}

// parseModelJSON strips markdown fences from a model reply and decodes the
// remaining JSON into out.
func parseModelJSON(raw string, out interface{}) error {
	return json.Unmarshal([]byte(utils.CleanModelJSON(raw)), out)
}
