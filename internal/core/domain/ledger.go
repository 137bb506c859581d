package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether a ledger entry brings money in or takes it out.
type EntryKind string

const (
	EntryKindInflow  EntryKind = "inflow"
	EntryKindOutflow EntryKind = "outflow"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	return k == EntryKindInflow || k == EntryKindOutflow
}

// LedgerEntry is a single cash movement.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	Kind        EntryKind       `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	AuditFields
}

// CategoryTotals holds the inflow and outflow sums of one category.
type CategoryTotals struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// LedgerSummary aggregates a set of entries.
type LedgerSummary struct {
	TotalIn    decimal.Decimal           `json:"totalIn"`
	TotalOut   decimal.Decimal           `json:"totalOut"`
	Balance    decimal.Decimal           `json:"balance"`
	Categories map[string]CategoryTotals `json:"categories"`
}

// SortedCategories returns the category names in lexical order.
func (s LedgerSummary) SortedCategories() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LedgerFilter narrows a ledger listing.
type LedgerFilter struct {
	Range     DateRange
	Category  string
	Kind      *EntryKind
	Limit     int
	NextToken *string
}
