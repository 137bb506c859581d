package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a row of the quotes table. Line items live in quote_line_items.
type Quote struct {
	QuoteID      string     `db:"quote_id"`
	Title        string     `db:"title"`
	Client       string     `db:"client"`
	Description  string     `db:"description"`
	PaymentTerms string     `db:"payment_terms"`
	DeliveryDate *time.Time `db:"delivery_date"`
	Status       string     `db:"status"`
	CreatedDate  time.Time  `db:"created_date"`
	AuditFields
}

// QuoteLineItem is a row of quote_line_items, ordered by Position.
type QuoteLineItem struct {
	QuoteID   string          `db:"quote_id"`
	Position  int             `db:"position"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}
