package dto

import (
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record a cash movement.
type CreateLedgerEntryRequest struct {
	Kind        domain.EntryKind `json:"kind" binding:"required,ledgerkind"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string           `json:"category" binding:"required,max=100"`
	Description *string          `json:"description"`
}

// UpdateLedgerEntryRequest is a partial update. Version, when sent, must match the stored one.
type UpdateLedgerEntryRequest struct {
	Kind        *domain.EntryKind `json:"kind" binding:"omitempty,ledgerkind"`
	Amount      *decimal.Decimal  `json:"amount"`
	Date        *string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    *string           `json:"category" binding:"omitempty,max=100"`
	Description *string           `json:"description"`
	Version     *int64            `json:"version"`
}

// ListLedgerEntriesParams defines query parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	DateRangeParams
	Category  string  `form:"category"`
	Kind      string  `form:"kind" binding:"omitempty,ledgerkind"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"next_token"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string           `json:"entryID"`
	Kind          domain.EntryKind `json:"kind"`
	Amount        string           `json:"amount"`
	Date          string           `json:"date"`
	Category      string           `json:"category"`
	Description   *string          `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
	Version       int64            `json:"version"`
}

// ListLedgerEntriesResponse is one page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// LedgerEntryMutationResponse wraps a created or updated entry.
type LedgerEntryMutationResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Entry   LedgerEntryResponse `json:"entry"`
}

// CategorySummaryResponse holds the totals of one category.
type CategorySummaryResponse struct {
	Category string `json:"category"`
	Inflow   string `json:"inflow"`
	Outflow  string `json:"outflow"`
}

// LedgerSummaryResponse is the aggregate of the entries in a window.
type LedgerSummaryResponse struct {
	StartDate  *string                   `json:"startDate,omitempty"`
	EndDate    *string                   `json:"endDate,omitempty"`
	TotalIn    string                    `json:"totalIn"`
	TotalOut   string                    `json:"totalOut"`
	Balance    string                    `json:"balance"`
	Categories []CategorySummaryResponse `json:"categories"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		Kind:          e.Kind,
		Amount:        utils.FormatMoney(e.Amount),
		Date:          FormatDate(e.Date),
		Category:      e.Category,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
		Version:       e.Version,
	}
}

// ToListLedgerEntriesResponse converts a page of entries.
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry, nextToken *string) ListLedgerEntriesResponse {
	res := ListLedgerEntriesResponse{Entries: make([]LedgerEntryResponse, len(entries)), NextToken: nextToken}
	for i, e := range entries {
		res.Entries[i] = ToLedgerEntryResponse(e)
	}
	return res
}

// ToLedgerSummaryResponse converts a summary; categories come out sorted by name.
func ToLedgerSummaryResponse(s domain.LedgerSummary, window domain.DateRange) LedgerSummaryResponse {
	res := LedgerSummaryResponse{
		StartDate:  formatOptionalDate(window.From),
		EndDate:    formatOptionalDate(window.To),
		TotalIn:    utils.FormatMoney(s.TotalIn),
		TotalOut:   utils.FormatMoney(s.TotalOut),
		Balance:    utils.FormatMoney(s.Balance),
		Categories: make([]CategorySummaryResponse, 0, len(s.Categories)),
	}
	for _, name := range s.SortedCategories() {
		totals := s.Categories[name]
		res.Categories = append(res.Categories, CategorySummaryResponse{
			Category: name,
			Inflow:   utils.FormatMoney(totals.Inflow),
			Outflow:  utils.FormatMoney(totals.Outflow),
		})
	}
	return res
}
