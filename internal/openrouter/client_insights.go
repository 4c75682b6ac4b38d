package openrouter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

const insightPromptTemplate = `You are a financial advisor for a freelancer/small business.
Analyze the following invoice data and provide 3 key insights or actionable advice regarding cash flow, client concentration, or overdue payments.
Keep it professional, encouraging, and concise (max 150 words).

Data: %s`

// GenerateInsights asks the model for a short financial summary of the given
// invoice summaries. Only the reduced summary rows are sent, never full
// invoices.
func (c *Client) GenerateInsights(ctx context.Context, summaries []domain.InvoiceSummary) (string, error) {
	if c.apiKey == "" {
		return "", &OpenRouterError{
			Op:  "validate_configuration",
			Err: fmt.Errorf("OpenRouter API key is not configured. Please set OPENROUTER_API_KEY environment variable"),
		}
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return "", &OpenRouterError{
			Op:  "marshal_summaries",
			Err: fmt.Errorf("failed to marshal invoice summaries: %w", err),
		}
	}

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	requestPayload := map[string]interface{}{
		"model": c.modelID,
		"messages": []message{
			{
				Role:    "user",
				Content: fmt.Sprintf(insightPromptTemplate, string(data)),
			},
		},
	}

	respBody, err := c.send(ctx, requestPayload)
	if err != nil {
		return "", err
	}

	content := messageContent(respBody)
	if content == "" {
		return "", &OpenRouterError{
			Op:  "check_response_choices",
			Err: fmt.Errorf("no content in response"),
		}
	}
	return content, nil
}
