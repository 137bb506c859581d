package services

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// LedgerReaderSvc defines read operations for the cash-flow ledger
type LedgerReaderSvc interface {
	// GetLedgerEntry retrieves a single entry.
	GetLedgerEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListLedgerEntries retrieves one page of entries and the token of the next page.
	ListLedgerEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error)

	// GetLedgerSummary totals every entry dated inside window.
	GetLedgerSummary(ctx context.Context, window domain.DateRange) (*domain.LedgerSummary, error)
}

// LedgerWriterSvc defines write operations for the cash-flow ledger
type LedgerWriterSvc interface {
	CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)
	UpdateLedgerEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)
	DeleteLedgerEntry(ctx context.Context, entryID string, userID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
