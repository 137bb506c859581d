package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	EntryDate   time.Time       `db:"entry_date"`
	Category    string          `db:"category"`
	Description *string         `db:"description"`
	AuditFields
}
