package openrouter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

const extractSystemPrompt = `You are an invoice data extraction assistant. Analyze the image. If it looks like an invoice or receipt, extract the following data:
- Client name
- Issue date (in YYYY-MM-DD format)
- Due date (in YYYY-MM-DD format; if not present, infer 30 days after the issue date)
- Line items (description, quantity, unit price)

Format your response as a valid JSON object with the following structure:
{
  "clientName": "...",
  "issueDate": "YYYY-MM-DD",
  "dueDate": "YYYY-MM-DD",
  "items": [
    {
      "description": "...",
      "quantity": 0.0,
      "price": 0.0
    }
  ]
}

Omit any field you cannot determine from the image. Do not include any other text in your response, only provide the JSON.`

// ExtractInvoice extracts a partial invoice from a receipt image. The image
// is sent inline as a base64 data URL; nothing is uploaded anywhere. Network
// and API failures propagate as errors; a response whose content cannot be
// parsed yields an empty result instead.
func (c *Client) ExtractInvoice(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, error) {
	if c.apiKey == "" {
		return domain.ExtractionResult{}, &OpenRouterError{
			Op:  "validate_configuration",
			Err: fmt.Errorf("OpenRouter API key is not configured. Please set OPENROUTER_API_KEY environment variable"),
		}
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	type imageURL struct {
		URL string `json:"url"`
	}

	type content struct {
		Type     string    `json:"type"`
		Text     string    `json:"text,omitempty"`
		ImageURL *imageURL `json:"image_url,omitempty"`
	}

	type message struct {
		Role    string    `json:"role"`
		Content []content `json:"content"`
	}

	requestPayload := map[string]interface{}{
		"model": c.modelID,
		"messages": []message{
			{
				Role:    "system",
				Content: []content{{Type: "text", Text: extractSystemPrompt}},
			},
			{
				Role: "user",
				Content: []content{
					{Type: "text", Text: "Extract the data from this invoice image."},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
	}

	respBody, err := c.send(ctx, requestPayload)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return parseExtractionResponse(respBody), nil
}

// send marshals a chat-completions payload, posts it and returns the raw
// response body. Shared by the extraction and insight calls.
func (c *Client) send(ctx context.Context, payload map[string]interface{}) ([]byte, error) {
	requestData, err := json.Marshal(payload)
	if err != nil {
		return nil, &OpenRouterError{
			Op:  "marshal_request",
			Err: fmt.Errorf("failed to marshal request payload: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return nil, &OpenRouterError{
			Op:  "create_request",
			Err: fmt.Errorf("failed to create request: %w", err),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &OpenRouterError{
			Op:  "send_request",
			Err: fmt.Errorf("failed to send request: %w", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OpenRouterError{
			Op:  "read_response",
			Err: fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &OpenRouterError{
			Op:  "check_api_response",
			Err: fmt.Errorf("API error: %s - %s", resp.Status, string(respBody)),
		}
	}

	return respBody, nil
}
