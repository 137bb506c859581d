package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the workflow state of a quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// QuoteLifecycle: pending -> sent -> accepted | rejected.
var QuoteLifecycle = NewLifecycle(QuoteStatusPending,
	Stage[QuoteStatus]{State: QuoteStatusPending, Label: "Pendente", Next: []QuoteStatus{QuoteStatusSent}},
	Stage[QuoteStatus]{State: QuoteStatusSent, Label: "Enviado", Next: []QuoteStatus{QuoteStatusAccepted, QuoteStatusRejected}},
	Stage[QuoteStatus]{State: QuoteStatusAccepted, Label: "Aceito"},
	Stage[QuoteStatus]{State: QuoteStatusRejected, Label: "Rejeitado"},
)

// LineItem is one priced service on a quote.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Subtotal is quantity times unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Quote is a priced proposal sent to a client.
type Quote struct {
	QuoteID      string      `json:"quoteID"`
	Title        string      `json:"title"`
	Client       string      `json:"client"`
	Description  string      `json:"description"`
	PaymentTerms string      `json:"paymentTerms"`
	DeliveryDate *time.Time  `json:"deliveryDate,omitempty"`
	Status       QuoteStatus `json:"status"`
	CreatedDate  time.Time   `json:"createdDate"`
	LineItems    []LineItem  `json:"lineItems"`
	AuditFields
}

// Total is recomputed from the line items on every call.
func (q Quote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range q.LineItems {
		total = total.Add(li.Subtotal())
	}
	return total
}

// QuoteFilter narrows a quote listing. Search matches title, client or description.
type QuoteFilter struct {
	Status *QuoteStatus
	Client string
	Search string
}

// QuoteStats counts quotes per status.
type QuoteStats struct {
	Total         int                 `json:"total"`
	ByStatus      map[QuoteStatus]int `json:"byStatus"`
	TotalValue    decimal.Decimal     `json:"totalValue"`
	AcceptedValue decimal.Decimal     `json:"acceptedValue"`
}
