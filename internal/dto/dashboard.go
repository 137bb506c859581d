package dto

import "github.com/SscSPs/orbisx_backoffice/internal/core/domain"

// DashboardResponse bundles the four aggregates shown on the landing page.
type DashboardResponse struct {
	Ledger    LedgerSummaryResponse `json:"ledger"`
	Quotes    QuoteStatsResponse    `json:"quotes"`
	Contracts ContractStatsResponse `json:"contracts"`
	Tasks     TaskStatsResponse     `json:"tasks"`
}

// ToDashboardResponse converts an overview computed for window.
func ToDashboardResponse(o domain.Overview, window domain.DateRange) DashboardResponse {
	return DashboardResponse{
		Ledger:    ToLedgerSummaryResponse(o.Ledger, window),
		Quotes:    ToQuoteStatsResponse(o.Quotes),
		Contracts: ToContractStatsResponse(o.Contracts),
		Tasks:     ToTaskStatsResponse(o.Tasks),
	}
}
