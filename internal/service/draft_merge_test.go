package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

func TestNewDraft(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	draft := NewDraft(now)

	assert.Equal(t, "2024-03-01", draft.IssueDate)
	assert.Equal(t, "2024-03-31", draft.DueDate)
	assert.Equal(t, domain.StatusDraft, draft.Status)
	require.Len(t, draft.Items, 1)
	assert.NotEmpty(t, draft.Items[0].ID)
	assert.Equal(t, 1.0, draft.Items[0].Quantity)
}

func TestMergeExtraction(t *testing.T) {
	draft := domain.Invoice{
		ClientName: "A",
		IssueDate:  "2024-01-01",
		DueDate:    "2024-01-31",
		Status:     domain.StatusDraft,
		Items: []domain.InvoiceItem{
			{ID: "x", Description: "existing", Quantity: 1, Price: 10},
		},
	}

	t.Run("absent fields leave the draft untouched", func(t *testing.T) {
		merged := MergeExtraction(draft, domain.ExtractionResult{
			Items: []domain.ExtractedItem{
				{Description: "y", Quantity: 2, Price: 20},
				{Description: "z", Quantity: 3, Price: 30},
			},
		})

		assert.Equal(t, "A", merged.ClientName)
		assert.Equal(t, "2024-01-01", merged.IssueDate)
		assert.Equal(t, "2024-01-31", merged.DueDate)
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		merged := MergeExtraction(draft, domain.ExtractionResult{
			ClientName: "Acme Corp",
			IssueDate:  "2024-02-10",
			DueDate:    "2024-03-11",
		})

		assert.Equal(t, "Acme Corp", merged.ClientName)
		assert.Equal(t, "2024-02-10", merged.IssueDate)
		assert.Equal(t, "2024-03-11", merged.DueDate)
		// No items returned: the draft's sequence stays as it is.
		assert.Equal(t, draft.Items, merged.Items)
	})

	t.Run("returned items wholly replace with fresh ids", func(t *testing.T) {
		merged := MergeExtraction(draft, domain.ExtractionResult{
			Items: []domain.ExtractedItem{
				{Description: "y", Quantity: 2, Price: 20},
				{Description: "z", Quantity: 3, Price: 30},
			},
		})

		require.Len(t, merged.Items, 2)
		assert.Equal(t, "y", merged.Items[0].Description)
		assert.Equal(t, "z", merged.Items[1].Description)
		assert.NotEmpty(t, merged.Items[0].ID)
		assert.NotEmpty(t, merged.Items[1].ID)
		assert.NotEqual(t, merged.Items[0].ID, merged.Items[1].ID)
		assert.NotEqual(t, "x", merged.Items[0].ID)
	})

	t.Run("input draft is never mutated", func(t *testing.T) {
		_ = MergeExtraction(draft, domain.ExtractionResult{
			ClientName: "Someone Else",
			Items:      []domain.ExtractedItem{{Description: "other"}},
		})

		assert.Equal(t, "A", draft.ClientName)
		require.Len(t, draft.Items, 1)
		assert.Equal(t, "x", draft.Items[0].ID)
	})

	t.Run("empty result is a no-op merge", func(t *testing.T) {
		merged := MergeExtraction(draft, domain.ExtractionResult{})
		assert.Equal(t, draft, merged)
	})
}
