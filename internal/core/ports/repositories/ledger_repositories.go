package repositories

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// LedgerEntryReader defines read operations for ledger entries
type LedgerEntryReader interface {
	// FindLedgerEntryByID retrieves a single entry.
	FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListLedgerEntries retrieves one page of entries, newest first, and the token of the next page.
	ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error)

	// FindLedgerEntriesInRange retrieves every entry dated inside window.
	FindLedgerEntriesInRange(ctx context.Context, window domain.DateRange) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter defines write operations for ledger entries
type LedgerEntryWriter interface {
	// SaveLedgerEntry persists a new entry.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateLedgerEntry overwrites an entry whose stored version equals expectedVersion.
	// entry.Version must already hold the new version.
	UpdateLedgerEntry(ctx context.Context, entry domain.LedgerEntry, expectedVersion int64) error

	// DeleteLedgerEntry removes an entry.
	DeleteLedgerEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
