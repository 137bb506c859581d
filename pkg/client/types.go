package client

import (
	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// Errors an APIError unwraps to, by HTTP status.
var (
	ErrValidation   = apperrors.ErrValidation
	ErrUnauthorized = apperrors.ErrUnauthorized
	ErrForbidden    = apperrors.ErrForbidden
	ErrNotFound     = apperrors.ErrNotFound
	ErrConflict     = apperrors.ErrConflict
)

// Enumerations used in requests and responses.
type (
	QuoteStatus    = domain.QuoteStatus
	EntryKind      = domain.EntryKind
	TaskKind       = domain.TaskKind
	ContractStatus = domain.ContractStatus
	AuthProvider   = domain.AuthProvider
)

const (
	QuoteStatusPending  = domain.QuoteStatusPending
	QuoteStatusSent     = domain.QuoteStatusSent
	QuoteStatusAccepted = domain.QuoteStatusAccepted
	QuoteStatusRejected = domain.QuoteStatusRejected

	EntryKindInflow  = domain.EntryKindInflow
	EntryKindOutflow = domain.EntryKindOutflow

	TaskKindCapture = domain.TaskKindCapture
	TaskKindEdit    = domain.TaskKindEdit
	TaskKindMeeting = domain.TaskKindMeeting

	ContractStatusAwaiting = domain.ContractStatusAwaiting
	ContractStatusActive   = domain.ContractStatusActive
	ContractStatusFinished = domain.ContractStatusFinished
)

// Request and query types.
type (
	DateRange               = dto.DateRangeParams
	ListLedgerEntriesParams = dto.ListLedgerEntriesParams
	CreateLedgerEntry       = dto.CreateLedgerEntryRequest
	ListQuotesParams        = dto.ListQuotesParams
	CreateQuote             = dto.CreateQuoteRequest
	LineItem                = dto.LineItemRequest
	ListContractsParams     = dto.ListContractsParams
	ListTasksParams         = dto.ListTasksParams
)

// Response types.
type (
	User              = dto.UserResponse
	LoginResult       = dto.LoginResponse
	AuthStatus        = dto.CheckAuthResponse
	LedgerEntry       = dto.LedgerEntryResponse
	LedgerEntryPage   = dto.ListLedgerEntriesResponse
	LedgerEntryResult = dto.LedgerEntryMutationResponse
	LedgerSummary     = dto.LedgerSummaryResponse
	CategorySummary   = dto.CategorySummaryResponse
	Quote             = dto.QuoteResponse
	LineItemDetail    = dto.LineItemResponse
	QuoteStats        = dto.QuoteStatsResponse
	Contract          = dto.ContractResponse
	ContractDocument  = dto.DocumentResponse
	ContractStats     = dto.ContractStatsResponse
	Task              = dto.TaskResponse
	TaskStats         = dto.TaskStatsResponse
	Calendar          = dto.CalendarResponse
	Dashboard         = dto.DashboardResponse
)
