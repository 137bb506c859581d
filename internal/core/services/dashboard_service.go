package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	ledger    portssvc.LedgerReaderSvc
	quotes    portssvc.QuoteReaderSvc
	contracts portssvc.ContractReaderSvc
	tasks     portssvc.TaskReaderSvc
}

// NewDashboardService composes the read sides of the other services.
func NewDashboardService(
	ledger portssvc.LedgerReaderSvc,
	quotes portssvc.QuoteReaderSvc,
	contracts portssvc.ContractReaderSvc,
	tasks portssvc.TaskReaderSvc,
	options ...ServiceOption,
) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService: newBaseService(options),
		ledger:      ledger,
		quotes:      quotes,
		contracts:   contracts,
		tasks:       tasks,
	}
}

// GetOverview loads the four summaries concurrently. The window applies to the
// ledger and the tasks; quote and contract figures cover every record.
func (s *dashboardService) GetOverview(ctx context.Context, window domain.DateRange) (*domain.Overview, error) {
	var overview domain.Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.ledger.GetLedgerSummary(gctx, window)
		if err != nil {
			return err
		}
		overview.Ledger = *summary
		return nil
	})
	g.Go(func() error {
		stats, err := s.quotes.GetQuoteStats(gctx)
		if err != nil {
			return err
		}
		overview.Quotes = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.contracts.GetContractStats(gctx)
		if err != nil {
			return err
		}
		overview.Contracts = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.tasks.GetTaskStats(gctx, domain.TaskFilter{Range: window})
		if err != nil {
			return err
		}
		overview.Tasks = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard overview", slog.Bool("bounded", window.Bounded()))
		return nil, err
	}
	return &overview, nil
}
