package domain

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "Draft"
	StatusPending InvoiceStatus = "Pending"
	StatusPaid    InvoiceStatus = "Paid"
	StatusOverdue InvoiceStatus = "Overdue"
)

// IsValid reports whether the status is one of the known invoice states
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// InvoiceItem represents a single line item on an invoice
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// LineTotal returns quantity x price. The line total is always derived,
// never stored alongside the item.
func (it InvoiceItem) LineTotal() float64 {
	return it.Quantity * it.Price
}

// Invoice represents the core domain entity for an invoice.
// Dates are kept as YYYY-MM-DD strings, matching the wire format.
type Invoice struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"clientName"`
	ClientEmail string        `json:"clientEmail,omitempty"`
	IssueDate   string        `json:"issueDate"`
	DueDate     string        `json:"dueDate"`
	Status      InvoiceStatus `json:"status"`
	Items       []InvoiceItem `json:"items"`
	Notes       string        `json:"notes,omitempty"`
}

// Total returns the sum of quantity x price over all line items.
// Recomputed on every call; malformed numeric input (NaN) propagates
// into the result unguarded.
func (i Invoice) Total() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.LineTotal()
	}
	return total
}

// Clone returns a deep copy of the invoice, including its item slice,
// so callers can hand out snapshots without sharing backing arrays.
func (i Invoice) Clone() Invoice {
	out := i
	if i.Items != nil {
		out.Items = make([]InvoiceItem, len(i.Items))
		copy(out.Items, i.Items)
	}
	return out
}

// DashboardStats is an ephemeral aggregate derived from the invoice
// collection. It is recomputed on every read and never mutated directly.
type DashboardStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	OutstandingAmount float64 `json:"outstandingAmount"`
	OverdueAmount     float64 `json:"overdueAmount"`
	TotalInvoices     int     `json:"totalInvoices"`
}

// MonthRevenue is one bucket of the monthly revenue rollup
type MonthRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// InvoiceSummary is the reduced per-invoice view sent to the insight
// adapter: status, issue date, derived total and client name only. Line
// items and client emails never leave the service.
type InvoiceSummary struct {
	Status    InvoiceStatus `json:"status"`
	IssueDate string        `json:"date"`
	Total     float64       `json:"total"`
	Client    string        `json:"client"`
}
