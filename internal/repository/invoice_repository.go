package repository

import (
	"context"
	"fmt"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// InvoiceRepository defines the interface for the owned invoice collection.
// The collection is ordered newest-first: Create prepends, and List returns
// invoices in that order.
type InvoiceRepository interface {
	// List returns a snapshot of the collection, newest-first
	List(ctx context.Context) ([]domain.Invoice, error)

	// GetByID returns the invoice with the given id, or false if absent
	GetByID(ctx context.Context, id string) (domain.Invoice, bool, error)

	// Create inserts the invoice at the front of the collection
	Create(ctx context.Context, invoice domain.Invoice) error

	// Update replaces the invoice with a matching id in place.
	// It reports whether a match existed; no match is a no-op, not an error.
	Update(ctx context.Context, invoice domain.Invoice) (bool, error)

	// Delete removes the invoice with the given id. Idempotent.
	Delete(ctx context.Context, id string) error

	// Replace swaps in a whole new collection (used for seeding)
	Replace(ctx context.Context, invoices []domain.Invoice) error
}
