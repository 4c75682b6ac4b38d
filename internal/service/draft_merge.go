package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// NewDraft returns a fresh draft invoice with the form's default values:
// issued today, due in 30 days, a single empty line item.
func NewDraft(now time.Time) domain.Invoice {
	return domain.Invoice{
		IssueDate: now.Format("2006-01-02"),
		DueDate:   now.Add(30 * 24 * time.Hour).Format("2006-01-02"),
		Status:    domain.StatusDraft,
		Items: []domain.InvoiceItem{
			{ID: uuid.NewString(), Quantity: 1},
		},
	}
}

// MergeExtraction folds an extraction adapter result into a draft invoice
// under fill-if-present semantics: each returned field overwrites the
// draft's field only when the returned value is present; absent fields
// leave the draft untouched.
//
// Returned line items wholly replace the draft's item sequence, and every
// replacing item gets a freshly generated id, decoupled from anything the
// adapter may have produced. The input draft is never mutated; callers that
// see the adapter call fail keep their draft unchanged.
func MergeExtraction(draft domain.Invoice, result domain.ExtractionResult) domain.Invoice {
	merged := draft.Clone()

	if result.ClientName != "" {
		merged.ClientName = result.ClientName
	}
	if result.IssueDate != "" {
		merged.IssueDate = result.IssueDate
	}
	if result.DueDate != "" {
		merged.DueDate = result.DueDate
	}
	if result.Items != nil {
		items := make([]domain.InvoiceItem, len(result.Items))
		for i, it := range result.Items {
			items[i] = domain.InvoiceItem{
				ID:          uuid.NewString(),
				Description: it.Description,
				Quantity:    it.Quantity,
				Price:       it.Price,
			}
		}
		merged.Items = items
	}

	return merged
}
