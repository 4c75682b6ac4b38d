package repository

import (
	"context"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// DemoInvoices returns the sample invoice set used when the service starts
// with demo data enabled. Also used as fixtures in tests.
func DemoInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID:          "INV-001",
			ClientName:  "Tech Solutions Inc",
			ClientEmail: "accounts@techsolutions.com",
			IssueDate:   "2023-10-15",
			DueDate:     "2023-11-15",
			Status:      domain.StatusPaid,
			Items: []domain.InvoiceItem{
				{ID: "1", Description: "Frontend Development", Quantity: 40, Price: 85},
				{ID: "2", Description: "UI Design", Quantity: 15, Price: 95},
			},
			Notes: "Thank you for your business!",
		},
		{
			ID:          "INV-002",
			ClientName:  "Creative Agency",
			ClientEmail: "billing@creative.agency",
			IssueDate:   "2023-10-28",
			DueDate:     "2023-11-10",
			Status:      domain.StatusOverdue,
			Items: []domain.InvoiceItem{
				{ID: "3", Description: "Logo Redesign", Quantity: 1, Price: 1500},
			},
			Notes: "Late fees apply after 30 days.",
		},
		{
			ID:          "INV-003",
			ClientName:  "Startup Hub",
			ClientEmail: "hello@startuphub.io",
			IssueDate:   "2023-11-05",
			DueDate:     "2023-12-05",
			Status:      domain.StatusPending,
			Items: []domain.InvoiceItem{
				{ID: "4", Description: "Consultation", Quantity: 5, Price: 200},
				{ID: "5", Description: "Server Setup", Quantity: 1, Price: 500},
			},
		},
	}
}

// SeedDemoData loads the demo invoice set into the repository
func SeedDemoData(ctx context.Context, repo InvoiceRepository) error {
	return repo.Replace(ctx, DemoInvoices())
}
