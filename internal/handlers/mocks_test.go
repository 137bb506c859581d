package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedgerEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListLedgerEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}
func (m *MockLedgerService) GetLedgerSummary(ctx context.Context, window domain.DateRange) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}
func (m *MockLedgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) UpdateLedgerEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) DeleteLedgerEntry(ctx context.Context, entryID string, userID string) error {
	return m.Called(ctx, entryID, userID).Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ListQuotes(ctx context.Context, params dto.ListQuotesParams) ([]domain.Quote, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ListQuoteClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockQuoteService) GetQuoteStats(ctx context.Context) (*domain.QuoteStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteStats), args.Error(1)
}
func (m *MockQuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ChangeQuoteStatus(ctx context.Context, quoteID string, req dto.UpdateQuoteStatusRequest, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	return m.Called(ctx, quoteID, userID).Error(0)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) GetContract(ctx context.Context, contractID string) (*domain.ContractWithStatus, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractWithStatus), args.Error(1)
}
func (m *MockContractService) ListContracts(ctx context.Context, params dto.ListContractsParams) ([]domain.ContractWithStatus, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractWithStatus), args.Error(1)
}
func (m *MockContractService) ListContractClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockContractService) GetContractStats(ctx context.Context) (*domain.ContractStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractStats), args.Error(1)
}
func (m *MockContractService) OpenContractDocument(ctx context.Context, contractID string) (*domain.DocumentRef, io.ReadCloser, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.DocumentRef), args.Get(1).(io.ReadCloser), args.Error(2)
}
func (m *MockContractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, doc domain.DocumentUpload, userID string) (*domain.ContractWithStatus, error) {
	var content []byte
	if doc.Content != nil {
		content, _ = io.ReadAll(doc.Content)
	}
	args := m.Called(ctx, req, doc.Name, string(content), userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractWithStatus), args.Error(1)
}
func (m *MockContractService) UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, userID string) (*domain.ContractWithStatus, error) {
	args := m.Called(ctx, contractID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractWithStatus), args.Error(1)
}
func (m *MockContractService) DeleteContract(ctx context.Context, contractID string, userID string) error {
	return m.Called(ctx, contractID, userID).Error(0)
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)

// --- Mock TaskService ---
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskService) GetTaskCalendar(ctx context.Context, year, month int, filter domain.TaskFilter) (*domain.TaskAggregate, error) {
	args := m.Called(ctx, year, month, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskAggregate), args.Error(1)
}
func (m *MockTaskService) GetTaskStats(ctx context.Context, filter domain.TaskFilter) (*domain.TaskStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskStats), args.Error(1)
}
func (m *MockTaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, userID string) (*domain.Task, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) SetTaskCompletion(ctx context.Context, taskID string, req dto.SetTaskCompletionRequest, userID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	return m.Called(ctx, taskID, userID).Error(0)
}

var _ portssvc.TaskSvcFacade = (*MockTaskService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.Session), args.Error(2)
}
func (m *MockAuthService) LoginWithGoogle(ctx context.Context, code string) (*domain.User, *domain.Session, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.Session), args.Error(2)
}
func (m *MockAuthService) CheckAuth(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetOverview(ctx context.Context, window domain.DateRange) (*domain.Overview, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)
