// Package engine holds the pure business rules of the back office: ledger
// summaries, the quote workflow, contract status derivation and the agenda
// calendar. Nothing here touches storage or the clock; callers pass "today" in.
package engine

import (
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeLedger totals the entries that fall inside window.
// Entries of an unknown kind are ignored. Empty input yields a zero summary.
func SummarizeLedger(entries []domain.LedgerEntry, window domain.DateRange) domain.LedgerSummary {
	summary := domain.LedgerSummary{
		TotalIn:    decimal.Zero,
		TotalOut:   decimal.Zero,
		Balance:    decimal.Zero,
		Categories: make(map[string]domain.CategoryTotals),
	}

	for _, entry := range entries {
		if !window.Contains(entry.Date) {
			continue
		}

		totals, ok := summary.Categories[entry.Category]
		if !ok {
			totals = domain.CategoryTotals{Inflow: decimal.Zero, Outflow: decimal.Zero}
		}

		switch entry.Kind {
		case domain.EntryKindInflow:
			summary.TotalIn = summary.TotalIn.Add(entry.Amount)
			totals.Inflow = totals.Inflow.Add(entry.Amount)
		case domain.EntryKindOutflow:
			summary.TotalOut = summary.TotalOut.Add(entry.Amount)
			totals.Outflow = totals.Outflow.Add(entry.Amount)
		default:
			continue
		}
		summary.Categories[entry.Category] = totals
	}

	summary.Balance = summary.TotalIn.Sub(summary.TotalOut)
	return summary
}

// ValidateLedgerEntry checks the fields a ledger entry needs before it is stored.
func ValidateLedgerEntry(entry domain.LedgerEntry) error {
	if !entry.Kind.Valid() {
		return invalidf("entry kind must be %q or %q", domain.EntryKindInflow, domain.EntryKindOutflow)
	}
	if !entry.Amount.IsPositive() {
		return invalidf("amount must be greater than zero")
	}
	if !hasCents(entry.Amount) {
		return invalidf("amount has more than two decimal places")
	}
	if entry.Date.IsZero() {
		return invalidf("date is required")
	}
	if entry.Category == "" {
		return invalidf("category is required")
	}
	return nil
}
