package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/repository"
)

// FilterInvoices returns the invoices whose client name or id contains the
// query, case-insensitively. An empty query returns the input unchanged.
// Input order is always preserved.
func FilterInvoices(invoices []domain.Invoice, query string) []domain.Invoice {
	if query == "" {
		return invoices
	}

	q := strings.ToLower(query)
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if strings.Contains(strings.ToLower(inv.ClientName), q) ||
			strings.Contains(strings.ToLower(inv.ID), q) {
			out = append(out, inv)
		}
	}
	return out
}

// InvoiceServicer defines the mutation and query operations over the owned
// invoice collection
type InvoiceServicer interface {
	// List returns the collection newest-first, filtered by query if non-empty
	List(ctx context.Context, query string) ([]domain.Invoice, error)

	// Get returns the invoice with the given id, or false if absent
	Get(ctx context.Context, id string) (domain.Invoice, bool, error)

	// Create inserts the invoice at the front of the collection, generating
	// any missing invoice or item ids
	Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)

	// Update replaces the matching invoice in place. A missing id is a
	// silent no-op; the returned bool reports whether a match existed.
	Update(ctx context.Context, invoice domain.Invoice) (bool, error)

	// Delete removes the invoice with the given id. Idempotent.
	Delete(ctx context.Context, id string) error
}

// InvoiceService implements InvoiceServicer on top of an InvoiceRepository
type InvoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

// List returns the collection newest-first, filtered by query if non-empty
func (s *InvoiceService) List(ctx context.Context, query string) ([]domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterInvoices(invoices, query), nil
}

// Get returns the invoice with the given id
func (s *InvoiceService) Get(ctx context.Context, id string) (domain.Invoice, bool, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts the invoice at the front of the collection. Ids are
// generated here when the caller did not supply them, for the invoice
// itself and for each line item.
func (s *InvoiceService) Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	for i := range invoice.Items {
		if invoice.Items[i].ID == "" {
			invoice.Items[i].ID = uuid.NewString()
		}
	}
	if invoice.Status == "" {
		invoice.Status = domain.StatusDraft
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

// Update replaces the matching invoice, preserving its position in the
// collection. Updating a non-existent id leaves the collection unchanged.
func (s *InvoiceService) Update(ctx context.Context, invoice domain.Invoice) (bool, error) {
	for i := range invoice.Items {
		if invoice.Items[i].ID == "" {
			invoice.Items[i].ID = uuid.NewString()
		}
	}
	return s.repo.Update(ctx, invoice)
}

// Delete removes the invoice with the given id. Deleting twice is the same
// as deleting once.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
