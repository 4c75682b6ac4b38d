package model

import (
	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
)

// InvoiceItemDTO represents a single invoice line item for data transfer
type InvoiceItemDTO struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"lineTotal"`
}

// InvoiceDTO represents an invoice for data transfer. Total and line totals
// are derived from the items at conversion time; they are never stored.
type InvoiceDTO struct {
	ID          string           `json:"id"`
	ClientName  string           `json:"clientName"`
	ClientEmail string           `json:"clientEmail,omitempty"`
	IssueDate   string           `json:"issueDate"` // Format: YYYY-MM-DD
	DueDate     string           `json:"dueDate"`   // Format: YYYY-MM-DD
	Status      string           `json:"status"`
	Items       []InvoiceItemDTO `json:"items"`
	Notes       string           `json:"notes,omitempty"`
	Total       float64          `json:"total"`
}

// InvoiceListResponse represents the invoice list endpoint payload
type InvoiceListResponse struct {
	Data  []InvoiceDTO `json:"data"`
	Count int          `json:"count"`
}

// ScanResponse represents the result of running a receipt image through the
// extraction adapter and merging it into a draft
type ScanResponse struct {
	Draft InvoiceDTO `json:"draft"`
}

// InsightResponse represents the insight endpoint payload
type InsightResponse struct {
	Insight string `json:"insight"`
	Cached  bool   `json:"cached"`
}

// FromDomain converts a domain Invoice to an InvoiceDTO
func (dto *InvoiceDTO) FromDomain(invoice domain.Invoice) {
	dto.ID = invoice.ID
	dto.ClientName = invoice.ClientName
	dto.ClientEmail = invoice.ClientEmail
	dto.IssueDate = invoice.IssueDate
	dto.DueDate = invoice.DueDate
	dto.Status = string(invoice.Status)
	dto.Notes = invoice.Notes
	dto.Total = invoice.Total()

	dto.Items = make([]InvoiceItemDTO, len(invoice.Items))
	for i, item := range invoice.Items {
		dto.Items[i] = InvoiceItemDTO{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			LineTotal:   item.LineTotal(),
		}
	}
}

// ToDomain converts an InvoiceDTO to a domain Invoice
func (dto *InvoiceDTO) ToDomain() domain.Invoice {
	invoice := domain.Invoice{
		ID:          dto.ID,
		ClientName:  dto.ClientName,
		ClientEmail: dto.ClientEmail,
		IssueDate:   dto.IssueDate,
		DueDate:     dto.DueDate,
		Status:      domain.InvoiceStatus(dto.Status),
		Notes:       dto.Notes,
	}

	invoice.Items = make([]domain.InvoiceItem, len(dto.Items))
	for i, item := range dto.Items {
		invoice.Items[i] = domain.InvoiceItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return invoice
}

// FromDomainList converts a slice of domain invoices to DTOs
func FromDomainList(invoices []domain.Invoice) []InvoiceDTO {
	dtos := make([]InvoiceDTO, len(invoices))
	for i, inv := range invoices {
		dtos[i].FromDomain(inv)
	}
	return dtos
}
