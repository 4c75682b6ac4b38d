package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/repository"
)

func TestFilterInvoices(t *testing.T) {
	invoices := repository.DemoInvoices()

	t.Run("empty query returns input unchanged", func(t *testing.T) {
		out := FilterInvoices(invoices, "")
		assert.Equal(t, invoices, out)
	})

	t.Run("matches client name case-insensitively", func(t *testing.T) {
		out := FilterInvoices(invoices, "tech")
		require.Len(t, out, 1)
		assert.Equal(t, "Tech Solutions Inc", out[0].ClientName)
	})

	t.Run("matches invoice id case-insensitively", func(t *testing.T) {
		out := FilterInvoices(invoices, "inv-002")
		require.Len(t, out, 1)
		assert.Equal(t, "INV-002", out[0].ID)
	})

	t.Run("preserves input order", func(t *testing.T) {
		out := FilterInvoices(invoices, "inv")
		require.Len(t, out, 3)
		assert.Equal(t, "INV-001", out[0].ID)
		assert.Equal(t, "INV-002", out[1].ID)
		assert.Equal(t, "INV-003", out[2].ID)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		assert.Empty(t, FilterInvoices(invoices, "nobody"))
	})
}

func newSeededService(t *testing.T) (*InvoiceService, context.Context) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	require.NoError(t, repository.SeedDemoData(ctx, repo))
	return NewInvoiceService(repo), ctx
}

func TestInvoiceServiceCreate(t *testing.T) {
	svc, ctx := newSeededService(t)

	t.Run("new invoice is placed at the front", func(t *testing.T) {
		created, err := svc.Create(ctx, domain.Invoice{
			ID:         "INV-004",
			ClientName: "New Client",
			Status:     domain.StatusPending,
			Items:      []domain.InvoiceItem{{ID: "6", Quantity: 1, Price: 100}},
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-004", created.ID)

		invoices, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.NotEmpty(t, invoices)
		assert.Equal(t, "INV-004", invoices[0].ID)
	})

	t.Run("missing invoice and item ids are generated", func(t *testing.T) {
		created, err := svc.Create(ctx, domain.Invoice{
			ClientName: "Anonymous",
			Items:      []domain.InvoiceItem{{Description: "Work", Quantity: 1, Price: 10}},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.Items[0].ID)
		assert.Equal(t, domain.StatusDraft, created.Status, "status defaults to Draft")
	})
}

func TestInvoiceServiceUpdate(t *testing.T) {
	svc, ctx := newSeededService(t)

	t.Run("replaces matching invoice preserving position", func(t *testing.T) {
		found, err := svc.Update(ctx, domain.Invoice{
			ID:         "INV-002",
			ClientName: "Creative Agency (renamed)",
			Status:     domain.StatusPaid,
		})
		require.NoError(t, err)
		assert.True(t, found)

		invoices, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "INV-002", invoices[1].ID)
		assert.Equal(t, "Creative Agency (renamed)", invoices[1].ClientName)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		before, err := svc.List(ctx, "")
		require.NoError(t, err)

		found, err := svc.Update(ctx, domain.Invoice{ID: "INV-999", ClientName: "Ghost"})
		require.NoError(t, err)
		assert.False(t, found)

		after, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestInvoiceServiceDelete(t *testing.T) {
	svc, ctx := newSeededService(t)

	require.NoError(t, svc.Delete(ctx, "INV-001"))
	invoices, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, invoices, 2)

	// Deleting the same id twice yields the same result as deleting it once.
	require.NoError(t, svc.Delete(ctx, "INV-001"))
	again, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, invoices, again)
}
