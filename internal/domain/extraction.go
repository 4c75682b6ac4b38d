package domain

// ExtractedItem is a line item as returned by the extraction adapter.
// Item identifiers are assigned by this service during merge, never
// taken from the adapter.
type ExtractedItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// ExtractionResult is the partial invoice the extraction adapter infers
// from a receipt image. Any subset of fields may be absent: empty strings
// and a nil item slice mean "not present".
type ExtractionResult struct {
	ClientName string          `json:"clientName,omitempty"`
	IssueDate  string          `json:"issueDate,omitempty"`
	DueDate    string          `json:"dueDate,omitempty"`
	Items      []ExtractedItem `json:"items,omitempty"`
}

// IsEmpty reports whether the adapter returned no usable fields at all
func (r ExtractionResult) IsEmpty() bool {
	return r.ClientName == "" && r.IssueDate == "" && r.DueDate == "" && len(r.Items) == 0
}
