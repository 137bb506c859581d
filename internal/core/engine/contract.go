package engine

import (
	"math"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// ResolveContractStatus derives the status of a contract on the given day.
// All three dates are compared as calendar days.
func ResolveContractStatus(start, end, today time.Time) domain.ContractStatusView {
	s, e, t := domain.DateOf(start), domain.DateOf(end), domain.DateOf(today)

	view := domain.ContractStatusView{
		DaysRemaining: int(math.Ceil(float64(e.Sub(t)) / float64(day))),
	}
	switch {
	case t.Before(s):
		view.Status = domain.ContractStatusAwaiting
	case t.After(e):
		view.Status = domain.ContractStatusFinished
	default:
		view.Status = domain.ContractStatusActive
		view.ExpiringSoon = view.DaysRemaining <= domain.ExpiringSoonDays
	}
	return view
}

// ValidateContract checks a contract before it is stored.
func ValidateContract(c domain.Contract) error {
	if strings.TrimSpace(c.Title) == "" {
		return invalidf("title is required")
	}
	if strings.TrimSpace(c.Client) == "" {
		return invalidf("client is required")
	}
	if !c.Value.IsPositive() {
		return invalidf("value must be greater than zero")
	}
	if !hasCents(c.Value) {
		return invalidf("value has more than two decimal places")
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return invalidf("start and end dates are required")
	}
	if domain.DateOf(c.EndDate).Before(domain.DateOf(c.StartDate)) {
		return invalidf("end date must not be before start date")
	}
	return nil
}

// SummarizeContracts counts contracts per derived status on the given day.
func SummarizeContracts(contracts []domain.Contract, today time.Time) domain.ContractStats {
	stats := domain.ContractStats{
		ByStatus:    make(map[domain.ContractStatus]int, len(domain.ContractLifecycle.States())),
		TotalValue:  decimal.Zero,
		ActiveValue: decimal.Zero,
	}
	for _, s := range domain.ContractLifecycle.States() {
		stats.ByStatus[s] = 0
	}

	for _, c := range contracts {
		view := ResolveContractStatus(c.StartDate, c.EndDate, today)
		stats.Total++
		stats.ByStatus[view.Status]++
		stats.TotalValue = stats.TotalValue.Add(c.Value)
		if view.Status == domain.ContractStatusActive {
			stats.ActiveValue = stats.ActiveValue.Add(c.Value)
		}
	}
	return stats
}
