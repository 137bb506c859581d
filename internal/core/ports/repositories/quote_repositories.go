package repositories

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// QuoteReader defines read operations for quotes. Line items are always loaded.
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its line items.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves the quotes matching filter, newest first.
	ListQuotes(ctx context.Context, filter domain.QuoteFilter) ([]domain.Quote, error)

	// ListQuoteClients returns the distinct client names, sorted.
	ListQuoteClients(ctx context.Context) ([]string, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	// SaveQuote persists a new quote and its line items atomically.
	SaveQuote(ctx context.Context, quote domain.Quote) error

	// UpdateQuote overwrites a quote and replaces its line items atomically when the stored
	// version equals expectedVersion; otherwise it returns apperrors.ErrConflict.
	UpdateQuote(ctx context.Context, quote domain.Quote, expectedVersion int64) error

	// DeleteQuote removes a quote and its line items.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}

