package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/repository"
)

// InsightFallback is returned in place of adapter output when insight
// generation fails. The adapter contract guarantees the caller always gets
// prose back, never a propagated failure.
const InsightFallback = "Unable to generate insights at this time."

// ErrInsightBusy is returned when a generation request arrives while another
// one is still in flight. The service keeps a single in-flight request with
// no queuing or retry.
var ErrInsightBusy = errors.New("insight generation already in progress")

// InsightGenerator is the insight adapter consumed by this service
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, summaries []domain.InvoiceSummary) (string, error)
}

// InsightService produces the natural-language financial summary for the
// current invoice collection. The result is cached for the session in a
// single slot; Invalidate is the only way to drop it.
type InsightService struct {
	generator InsightGenerator
	repo      repository.InvoiceRepository

	mutex  sync.Mutex
	cached *string
	busy   bool
}

// NewInsightService creates a new insight service
func NewInsightService(generator InsightGenerator, repo repository.InvoiceRepository) *InsightService {
	return &InsightService{
		generator: generator,
		repo:      repo,
	}
}

// BuildSummaries reduces an invoice collection to the summary rows sent to
// the insight adapter
func BuildSummaries(invoices []domain.Invoice) []domain.InvoiceSummary {
	summaries := make([]domain.InvoiceSummary, len(invoices))
	for i, inv := range invoices {
		summaries[i] = domain.InvoiceSummary{
			Status:    inv.Status,
			IssueDate: inv.IssueDate,
			Total:     inv.Total(),
			Client:    inv.ClientName,
		}
	}
	return summaries
}

// Get returns the cached insight text, generating it on a miss. The bool
// reports whether the result came from the cache. A second call while a
// generation is pending fails with ErrInsightBusy.
//
// Adapter failures are absorbed: the fallback string is cached and returned
// in their place.
func (s *InsightService) Get(ctx context.Context) (string, bool, error) {
	s.mutex.Lock()
	if s.cached != nil {
		text := *s.cached
		s.mutex.Unlock()
		return text, true, nil
	}
	if s.busy {
		s.mutex.Unlock()
		return "", false, ErrInsightBusy
	}
	s.busy = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.busy = false
		s.mutex.Unlock()
	}()

	invoices, err := s.repo.List(ctx)
	if err != nil {
		return "", false, err
	}

	text, err := s.generator.GenerateInsights(ctx, BuildSummaries(invoices))
	if err != nil {
		log.Printf("Insight generation failed: %v", err)
		text = InsightFallback
	}

	s.mutex.Lock()
	s.cached = &text
	s.mutex.Unlock()

	return text, false, nil
}

// Invalidate drops the cached insight so the next Get regenerates it
func (s *InsightService) Invalidate() {
	s.mutex.Lock()
	s.cached = nil
	s.mutex.Unlock()
}
