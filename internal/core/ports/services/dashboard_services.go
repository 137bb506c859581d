package services

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// DashboardSvc assembles the overview shown on the landing page.
type DashboardSvc interface {
	GetOverview(ctx context.Context, window domain.DateRange) (*domain.Overview, error)
}
