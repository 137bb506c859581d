package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteDraft carries the client-supplied fields of a new quote.
type QuoteDraft struct {
	Title        string
	Client       string
	Description  string
	PaymentTerms string
	DeliveryDate *time.Time
	LineItems    []domain.LineItem
}

// NewQuote validates a draft and returns a pending quote dated today.
func NewQuote(draft QuoteDraft, today time.Time) (domain.Quote, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return domain.Quote{}, invalidf("title is required")
	}
	if strings.TrimSpace(draft.Client) == "" {
		return domain.Quote{}, invalidf("client is required")
	}
	if err := ValidateLineItems(draft.LineItems); err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		Title:        strings.TrimSpace(draft.Title),
		Client:       strings.TrimSpace(draft.Client),
		Description:  draft.Description,
		PaymentTerms: draft.PaymentTerms,
		DeliveryDate: draft.DeliveryDate,
		Status:       domain.QuoteLifecycle.Initial(),
		CreatedDate:  domain.DateOf(today),
		LineItems:    cloneItems(draft.LineItems),
	}, nil
}

// ValidateLineItems requires at least one item, each with a name,
// a quantity of one or more and a non-negative unit price in whole cents.
func ValidateLineItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return apperrors.ErrEmptyQuote
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return invalidf("line item %d: name is required", i+1)
		}
		if item.Quantity < 1 {
			return invalidf("line item %d: quantity must be at least 1", i+1)
		}
		if item.UnitPrice.IsNegative() {
			return invalidf("line item %d: unit price cannot be negative", i+1)
		}
		if !hasCents(item.UnitPrice) {
			return invalidf("line item %d: unit price has more than two decimal places", i+1)
		}
	}
	return nil
}

// TransitionQuote moves q to the target status if the lifecycle allows it.
// The input is left untouched.
func TransitionQuote(q domain.Quote, to domain.QuoteStatus) (domain.Quote, error) {
	if !domain.QuoteLifecycle.Valid(to) {
		return domain.Quote{}, fmt.Errorf("%w: unknown quote status %q", apperrors.ErrInvalidTransition, to)
	}
	if !domain.QuoteLifecycle.CanTransition(q.Status, to) {
		return domain.Quote{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, q.Status, to)
	}
	if q.Status == domain.QuoteStatusPending && !hasNamedItem(q.LineItems) {
		return domain.Quote{}, apperrors.ErrEmptyQuote
	}

	next := q
	next.Status = to
	next.LineItems = cloneItems(q.LineItems)
	return next, nil
}

// ReplaceLineItems swaps the items of a pending quote.
func ReplaceLineItems(q domain.Quote, items []domain.LineItem) (domain.Quote, error) {
	if q.Status != domain.QuoteStatusPending {
		return domain.Quote{}, apperrors.ErrQuoteLocked
	}
	if err := ValidateLineItems(items); err != nil {
		return domain.Quote{}, err
	}

	next := q
	next.LineItems = cloneItems(items)
	return next, nil
}

// SummarizeQuotes counts quotes per status and sums their totals.
func SummarizeQuotes(quotes []domain.Quote) domain.QuoteStats {
	stats := domain.QuoteStats{
		ByStatus:      make(map[domain.QuoteStatus]int, len(domain.QuoteLifecycle.States())),
		TotalValue:    decimal.Zero,
		AcceptedValue: decimal.Zero,
	}
	for _, s := range domain.QuoteLifecycle.States() {
		stats.ByStatus[s] = 0
	}

	for _, q := range quotes {
		total := q.Total()
		stats.Total++
		stats.ByStatus[q.Status]++
		stats.TotalValue = stats.TotalValue.Add(total)
		if q.Status == domain.QuoteStatusAccepted {
			stats.AcceptedValue = stats.AcceptedValue.Add(total)
		}
	}
	return stats
}

func hasNamedItem(items []domain.LineItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Name) != "" {
			return true
		}
	}
	return false
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
