package repository

import (
	"context"
	"sync"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// MemoryRepository implements InvoiceRepository with an in-process slice.
// The invoice collection is session state by design: the service carries no
// persistence layer, so the repository only has to survive for the lifetime
// of the process.
//
// All mutations replace whole entries, and every read hands out cloned
// snapshots, so callers never share backing arrays with the store.
type MemoryRepository struct {
	mutex    sync.RWMutex
	invoices []domain.Invoice
}

// NewMemoryRepository creates an empty in-memory invoice repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		invoices: make([]domain.Invoice, 0),
	}
}

// List returns a snapshot of the collection, newest-first
func (r *MemoryRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RepositoryError{Op: "list_invoices", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]domain.Invoice, len(r.invoices))
	for i, inv := range r.invoices {
		out[i] = inv.Clone()
	}
	return out, nil
}

// GetByID returns the invoice with the given id, or false if absent
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (domain.Invoice, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Invoice{}, false, &RepositoryError{Op: "get_invoice", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv.Clone(), true, nil
		}
	}
	return domain.Invoice{}, false, nil
}

// Create inserts the invoice at the front of the collection. Newest-first
// ordering is a user-visible invariant: new invoices must appear before
// older ones in unsorted views.
func (r *MemoryRepository) Create(ctx context.Context, invoice domain.Invoice) error {
	if err := ctx.Err(); err != nil {
		return &RepositoryError{Op: "create_invoice", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.invoices = append([]domain.Invoice{invoice.Clone()}, r.invoices...)
	return nil
}

// Update replaces the invoice with a matching id, preserving its position.
// A missing id is a silent no-op.
func (r *MemoryRepository) Update(ctx context.Context, invoice domain.Invoice) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &RepositoryError{Op: "update_invoice", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, inv := range r.invoices {
		if inv.ID == invoice.ID {
			r.invoices[i] = invoice.Clone()
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the invoice with the given id. Deleting an id that does
// not exist leaves the collection unchanged.
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return &RepositoryError{Op: "delete_invoice", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}

// Replace swaps in a whole new collection
func (r *MemoryRepository) Replace(ctx context.Context, invoices []domain.Invoice) error {
	if err := ctx.Err(); err != nil {
		return &RepositoryError{Op: "replace_invoices", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	next := make([]domain.Invoice, len(invoices))
	for i, inv := range invoices {
		next[i] = inv.Clone()
	}
	r.invoices = next
	return nil
}
