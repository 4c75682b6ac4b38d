package service

import (
	"context"
	"fmt"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// InvoiceExtractor is the extraction adapter consumed by this service:
// given an image it returns the partial invoice it could infer. A malformed
// or empty adapter response surfaces as an empty result, not an error.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, error)
}

// ProcessingError represents an error that occurred while consuming an
// external adapter
type ProcessingError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// ExtractionService runs receipt images through the extraction adapter and
// merges the result into a draft invoice
type ExtractionService struct {
	extractor InvoiceExtractor
}

// NewExtractionService creates a new extraction service
func NewExtractionService(extractor InvoiceExtractor) *ExtractionService {
	return &ExtractionService{extractor: extractor}
}

// ScanIntoDraft extracts invoice fields from an image and merges them into
// the given draft. When the adapter call fails the error is returned and the
// draft is handed back completely unchanged; no partial merge occurs.
func (s *ExtractionService) ScanIntoDraft(ctx context.Context, image []byte, mimeType string, draft domain.Invoice) (domain.Invoice, error) {
	result, err := s.extractor.ExtractInvoice(ctx, image, mimeType)
	if err != nil {
		return draft, &ProcessingError{Op: "extract_invoice", Err: err}
	}
	return MergeExtraction(draft, result), nil
}
