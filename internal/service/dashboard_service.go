package service

import (
	"context"
	"time"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/repository"
)

// ComputeStats derives the dashboard aggregate from an invoice collection.
// Pure and deterministic; cost is linear in invoice and item count, so it is
// recomputed on every read without memoization.
//
// Paid invoices accumulate into revenue, Pending into outstanding, Overdue
// into overdue. Draft invoices contribute to the count only. NaN amounts
// propagate into the aggregates unguarded.
func ComputeStats(invoices []domain.Invoice) domain.DashboardStats {
	var stats domain.DashboardStats
	for _, inv := range invoices {
		total := inv.Total()
		stats.TotalInvoices++
		switch inv.Status {
		case domain.StatusPaid:
			stats.TotalRevenue += total
		case domain.StatusPending:
			stats.OutstandingAmount += total
		case domain.StatusOverdue:
			stats.OverdueAmount += total
		}
	}
	return stats
}

// MonthlyRevenue buckets non-Draft invoice totals by the short month name of
// their issue date. Buckets are emitted in first-seen order, not
// chronological order; the chart consuming this rollup relies on that
// ordering staying stable. Invoices whose issue date does not parse are
// skipped.
func MonthlyRevenue(invoices []domain.Invoice) []domain.MonthRevenue {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, inv := range invoices {
		if inv.Status == domain.StatusDraft {
			continue
		}
		issued, err := time.Parse("2006-01-02", inv.IssueDate)
		if err != nil {
			continue
		}
		month := issued.Format("Jan")
		if _, seen := totals[month]; !seen {
			order = append(order, month)
		}
		totals[month] += inv.Total()
	}

	out := make([]domain.MonthRevenue, 0, len(order))
	for _, month := range order {
		out = append(out, domain.MonthRevenue{Month: month, Amount: totals[month]})
	}
	return out
}

// DashboardService computes derived dashboard projections over the owned
// invoice collection
type DashboardService struct {
	repo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Stats returns the dashboard aggregate for the current collection snapshot
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return ComputeStats(invoices), nil
}

// RevenueByMonth returns the monthly revenue rollup for the current snapshot
func (s *DashboardService) RevenueByMonth(ctx context.Context) ([]domain.MonthRevenue, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyRevenue(invoices), nil
}
