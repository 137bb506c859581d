package services

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context, params dto.ListQuotesParams) ([]domain.Quote, error)

	// ListQuoteClients returns the distinct client names used by quotes.
	ListQuoteClients(ctx context.Context) ([]string, error)

	// GetQuoteStats counts every quote per status and sums their totals.
	GetQuoteStats(ctx context.Context) (*domain.QuoteStats, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// CreateQuote validates the line items and stores a pending quote.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error)

	// UpdateQuote changes descriptive fields and, while the quote is pending, its line items.
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error)

	// ChangeQuoteStatus moves a quote along its lifecycle. Illegal steps yield apperrors.ErrInvalidTransition.
	ChangeQuoteStatus(ctx context.Context, quoteID string, req dto.UpdateQuoteStatusRequest, userID string) (*domain.Quote, error)

	DeleteQuote(ctx context.Context, quoteID string, userID string) error
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
