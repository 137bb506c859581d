package domain

import "time"

// EventType names a state change other systems may react to.
type EventType string

const (
	EventLedgerEntryCreated    EventType = "ledger.entry_created"
	EventLedgerEntryUpdated    EventType = "ledger.entry_updated"
	EventLedgerEntryDeleted    EventType = "ledger.entry_deleted"
	EventQuoteCreated          EventType = "quote.created"
	EventQuoteUpdated          EventType = "quote.updated"
	EventQuoteStatusChanged    EventType = "quote.status_changed"
	EventQuoteDeleted          EventType = "quote.deleted"
	EventContractCreated       EventType = "contract.created"
	EventContractUpdated       EventType = "contract.updated"
	EventContractDeleted       EventType = "contract.deleted"
	EventTaskCreated           EventType = "task.created"
	EventTaskUpdated           EventType = "task.updated"
	EventTaskCompletionChanged EventType = "task.completion_changed"
	EventTaskDeleted           EventType = "task.deleted"
)

// Event is published after a mutation has been committed.
type Event struct {
	Type       EventType      `json:"type"`
	EntityID   string         `json:"entityID"`
	ActorID    string         `json:"actorID"`
	Version    int64          `json:"version"`
	OccurredAt time.Time      `json:"occurredAt"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Overview is the dashboard snapshot for one date window.
type Overview struct {
	Ledger    LedgerSummary `json:"ledger"`
	Quotes    QuoteStats    `json:"quotes"`
	Contracts ContractStats `json:"contracts"`
	Tasks     TaskStats     `json:"tasks"`
}
