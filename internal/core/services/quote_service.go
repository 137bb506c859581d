package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/google/uuid"
)

type quoteService struct {
	BaseService
	quoteRepo portsrepo.QuoteRepositoryFacade
}

// NewQuoteService creates the quote service.
func NewQuoteService(repo portsrepo.QuoteRepositoryFacade, options ...ServiceOption) portssvc.QuoteSvcFacade {
	return &quoteService{
		BaseService: newBaseService(options),
		quoteRepo:   repo,
	}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error) {
	delivery, err := optionalDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	quote, err := engine.NewQuote(engine.QuoteDraft{
		Title:        req.Title,
		Client:       req.Client,
		Description:  req.Description,
		PaymentTerms: req.PaymentTerms,
		DeliveryDate: delivery,
		LineItems:    dto.ToDomainLineItems(req.LineItems),
	}, now)
	if err != nil {
		return nil, err
	}
	quote.QuoteID = uuid.NewString()
	quote.AuditFields = newAuditFields(now, userID)

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("quote_id", quote.QuoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote created",
		slog.String("quote_id", quote.QuoteID),
		slog.Int("line_items", len(quote.LineItems)))
	s.Publish(ctx, domain.EventQuoteCreated, quote.QuoteID, userID, quote.Version, map[string]any{
		"client": quote.Client,
		"total":  quote.Total().StringFixed(2),
	})
	return &quote, nil
}

func (s *quoteService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.quoteRepo.FindQuoteByID(ctx, quoteID)
}

func (s *quoteService) ListQuotes(ctx context.Context, params dto.ListQuotesParams) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx, params.ToDomain())
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes")
		return nil, err
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return quotes, nil
}

func (s *quoteService) ListQuoteClients(ctx context.Context) ([]string, error) {
	clients, err := s.quoteRepo.ListQuoteClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []string{}
	}
	return clients, nil
}

func (s *quoteService) GetQuoteStats(ctx context.Context) (*domain.QuoteStats, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx, domain.QuoteFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load quotes for stats")
		return nil, err
	}
	stats := engine.SummarizeQuotes(quotes)
	return &stats, nil
}

// UpdateQuote edits the descriptive fields of a quote. Line items can only be
// replaced while the quote is pending.
func (s *quoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("title is required")
		}
		quote.Title = strings.TrimSpace(*req.Title)
	}
	if req.Client != nil {
		if strings.TrimSpace(*req.Client) == "" {
			return nil, apperrors.NewValidationError("client is required")
		}
		quote.Client = strings.TrimSpace(*req.Client)
	}
	if req.Description != nil {
		quote.Description = *req.Description
	}
	if req.PaymentTerms != nil {
		quote.PaymentTerms = *req.PaymentTerms
	}
	if req.DeliveryDate != nil {
		if quote.DeliveryDate, err = optionalDate(req.DeliveryDate); err != nil {
			return nil, err
		}
	}
	if req.LineItems != nil {
		replaced, err := engine.ReplaceLineItems(*quote, dto.ToDomainLineItems(*req.LineItems))
		if err != nil {
			s.LogDebug(ctx, "Line item replacement rejected",
				slog.String("quote_id", quoteID),
				slog.String("status", string(quote.Status)))
			return nil, err
		}
		quote = &replaced
	}

	expected := touch(&quote.AuditFields, s.Now(), userID, req.Version)
	if err := s.quoteRepo.UpdateQuote(ctx, *quote, expected); err != nil {
		s.LogError(ctx, err, "Failed to update quote",
			slog.String("quote_id", quoteID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	s.Publish(ctx, domain.EventQuoteUpdated, quote.QuoteID, userID, quote.Version, nil)
	return quote, nil
}

// ChangeQuoteStatus checks the transition against the lifecycle before anything is written.
func (s *quoteService) ChangeQuoteStatus(ctx context.Context, quoteID string, req dto.UpdateQuoteStatusRequest, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	from := quote.Status
	next, err := engine.TransitionQuote(*quote, req.Status)
	if err != nil {
		s.LogDebug(ctx, "Quote transition rejected",
			slog.String("quote_id", quoteID),
			slog.String("from", string(from)),
			slog.String("to", string(req.Status)))
		return nil, err
	}

	expected := touch(&next.AuditFields, s.Now(), userID, req.Version)
	if err := s.quoteRepo.UpdateQuote(ctx, next, expected); err != nil {
		s.LogError(ctx, err, "Failed to store quote status",
			slog.String("quote_id", quoteID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	s.LogInfo(ctx, "Quote status changed",
		slog.String("quote_id", quoteID),
		slog.String("from", string(from)),
		slog.String("to", string(next.Status)))
	s.Publish(ctx, domain.EventQuoteStatusChanged, next.QuoteID, userID, next.Version, map[string]any{
		"from": from,
		"to":   next.Status,
	})
	return &next, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return err
	}
	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID), slog.String("user_id", userID))
	s.Publish(ctx, domain.EventQuoteDeleted, quoteID, userID, 0, nil)
	return nil
}
