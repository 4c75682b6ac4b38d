package openrouter

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*")

// chatResponse is the subset of the chat-completions response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// messageContent returns the content of the first choice, or "" when the
// response carries none
func messageContent(respBody []byte) string {
	var response chatResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		log.Printf("Failed to parse OpenRouter response: %v", err)
		return ""
	}
	if len(response.Choices) == 0 {
		return ""
	}
	return response.Choices[0].Message.Content
}

// parseExtractionResponse parses the model output into an extraction result.
// A malformed or empty response is treated as an empty object: no fields
// present, nothing to merge. Models sometimes wrap the JSON in markdown code
// fences, so those are stripped before parsing.
func parseExtractionResponse(respBody []byte) domain.ExtractionResult {
	content := messageContent(respBody)
	if content == "" {
		return domain.ExtractionResult{}
	}

	content = codeFencePattern.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)

	var result domain.ExtractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		log.Printf("Failed to parse extraction content as JSON: %v", err)
		return domain.ExtractionResult{}
	}
	return result
}
