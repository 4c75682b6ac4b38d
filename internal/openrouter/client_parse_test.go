package openrouter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

func chatBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestParseExtractionResponse(t *testing.T) {
	t.Run("plain JSON content", func(t *testing.T) {
		content := `{"clientName":"Acme Corp","issueDate":"2024-01-05","dueDate":"2024-02-04","items":[{"description":"Paper","quantity":2,"price":4.5}]}`

		result := parseExtractionResponse(chatBody(t, content))
		assert.Equal(t, "Acme Corp", result.ClientName)
		assert.Equal(t, "2024-01-05", result.IssueDate)
		assert.Equal(t, "2024-02-04", result.DueDate)
		require.Len(t, result.Items, 1)
		assert.Equal(t, domain.ExtractedItem{Description: "Paper", Quantity: 2, Price: 4.5}, result.Items[0])
	})

	t.Run("content wrapped in markdown code fences", func(t *testing.T) {
		content := "```json\n{\"clientName\":\"Fenced Inc\"}\n```"

		result := parseExtractionResponse(chatBody(t, content))
		assert.Equal(t, "Fenced Inc", result.ClientName)
	})

	t.Run("partial fields stay absent", func(t *testing.T) {
		result := parseExtractionResponse(chatBody(t, `{"issueDate":"2024-03-01"}`))
		assert.Equal(t, "2024-03-01", result.IssueDate)
		assert.Empty(t, result.ClientName)
		assert.Nil(t, result.Items)
		assert.False(t, result.IsEmpty())
	})

	t.Run("malformed content is treated as an empty object", func(t *testing.T) {
		result := parseExtractionResponse(chatBody(t, "Sorry, I could not read the image."))
		assert.True(t, result.IsEmpty())
	})

	t.Run("empty choices are treated as an empty object", func(t *testing.T) {
		result := parseExtractionResponse([]byte(`{"choices":[]}`))
		assert.True(t, result.IsEmpty())
	})

	t.Run("unparseable response body is treated as an empty object", func(t *testing.T) {
		result := parseExtractionResponse([]byte("not json at all"))
		assert.True(t, result.IsEmpty())
	})
}
