package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetOverview(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	quoteRepo := new(MockQuoteRepository)
	contractRepo := new(MockContractRepository)
	taskRepo := new(MockTaskRepository)

	from := day("2025-03-01")
	window := domain.DateRange{From: &from}

	ledgerRepo.On("FindLedgerEntriesInRange", mock.Anything, window).Return([]domain.LedgerEntry{
		{Kind: domain.EntryKindInflow, Amount: decimal.NewFromInt(300), Date: from, Category: "Ensaio"},
	}, nil).Once()
	quoteRepo.On("ListQuotes", mock.Anything, domain.QuoteFilter{}).Return([]domain.Quote{
		*storedQuote(domain.QuoteStatusSent, 2),
	}, nil).Once()
	contractRepo.On("ListContracts", mock.Anything, domain.ContractFilter{}).Return([]domain.Contract{
		{Value: decimal.NewFromInt(1000), StartDate: day("2025-03-01"), EndDate: day("2025-12-01")},
	}, nil).Once()
	taskRepo.On("ListTasks", mock.Anything, domain.TaskFilter{Range: window}).Return(sampleTasks(), nil).Once()

	clock := services.WithClock(fixedClock)
	svc := services.NewDashboardService(
		services.NewLedgerService(ledgerRepo, clock),
		services.NewQuoteService(quoteRepo, clock),
		services.NewContractService(contractRepo, new(MockDocumentStore), services.WithContractServiceOptions(clock)),
		services.NewTaskService(taskRepo, clock),
	)

	overview, err := svc.GetOverview(context.Background(), window)

	require.NoError(t, err)
	assert.Equal(t, "300.00", overview.Ledger.Balance.StringFixed(2))
	assert.Equal(t, 1, overview.Quotes.ByStatus[domain.QuoteStatusSent])
	assert.Equal(t, 1, overview.Contracts.ByStatus[domain.ContractStatusActive])
	assert.Equal(t, 3, overview.Tasks.Total)
}

func TestDashboardService_GetOverviewPropagatesError(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	quoteRepo := new(MockQuoteRepository)
	contractRepo := new(MockContractRepository)
	taskRepo := new(MockTaskRepository)

	ledgerRepo.On("FindLedgerEntriesInRange", mock.Anything, mock.Anything).Return(nil, apperrors.ErrConnectivity).Once()
	quoteRepo.On("ListQuotes", mock.Anything, mock.Anything).Return([]domain.Quote{}, nil).Maybe()
	contractRepo.On("ListContracts", mock.Anything, mock.Anything).Return([]domain.Contract{}, nil).Maybe()
	taskRepo.On("ListTasks", mock.Anything, mock.Anything).Return([]domain.Task{}, nil).Maybe()

	svc := services.NewDashboardService(
		services.NewLedgerService(ledgerRepo),
		services.NewQuoteService(quoteRepo),
		services.NewContractService(contractRepo, new(MockDocumentStore)),
		services.NewTaskService(taskRepo),
	)

	_, err := svc.GetOverview(context.Background(), domain.DateRange{})

	assert.ErrorIs(t, err, apperrors.ErrConnectivity)
}
