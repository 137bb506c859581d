package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/google/uuid"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates the cash-flow service.
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(options),
		ledgerRepo:  repo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		Kind:        req.Kind,
		Amount:      req.Amount,
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		AuditFields: newAuditFields(s.Now(), userID),
	}
	if err := engine.ValidateLedgerEntry(entry); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)))
	s.Publish(ctx, domain.EventLedgerEntryCreated, entry.EntryID, userID, entry.Version, map[string]any{
		"kind":   entry.Kind,
		"amount": entry.Amount.StringFixed(2),
	})
	return &entry, nil
}

func (s *ledgerService) GetLedgerEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, entryID)
	if err != nil {
		s.LogDebug(ctx, "Ledger entry lookup failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListLedgerEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error) {
	window, err := params.DateRangeParams.ToDomain()
	if err != nil {
		return nil, nil, err
	}

	filter := domain.LedgerFilter{
		Range:     window,
		Category:  strings.TrimSpace(params.Category),
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Kind != "" {
		kind := domain.EntryKind(params.Kind)
		filter.Kind = &kind
	}

	entries, next, err := s.ledgerRepo.ListLedgerEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, nil, err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, next, nil
}

// GetLedgerSummary loads the entries of the window and aggregates them.
func (s *ledgerService) GetLedgerSummary(ctx context.Context, window domain.DateRange) (*domain.LedgerSummary, error) {
	entries, err := s.ledgerRepo.FindLedgerEntriesInRange(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries for summary")
		return nil, err
	}
	summary := engine.SummarizeLedger(entries, window)
	return &summary, nil
}

func (s *ledgerService) UpdateLedgerEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		entry.Kind = *req.Kind
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Date != nil {
		if entry.Date, err = dto.ParseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		entry.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if err := engine.ValidateLedgerEntry(*entry); err != nil {
		return nil, err
	}

	expected := touch(&entry.AuditFields, s.Now(), userID, req.Version)
	if err := s.ledgerRepo.UpdateLedgerEntry(ctx, *entry, expected); err != nil {
		s.LogError(ctx, err, "Failed to update ledger entry",
			slog.String("entry_id", entryID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	s.Publish(ctx, domain.EventLedgerEntryUpdated, entry.EntryID, userID, entry.Version, nil)
	return entry, nil
}

func (s *ledgerService) DeleteLedgerEntry(ctx context.Context, entryID string, userID string) error {
	if err := s.ledgerRepo.DeleteLedgerEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Ledger entry deleted", slog.String("entry_id", entryID), slog.String("user_id", userID))
	s.Publish(ctx, domain.EventLedgerEntryDeleted, entryID, userID, 0, nil)
	return nil
}
