package dto

import (
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one priced line of a quote.
type LineItemRequest struct {
	Name      string          `json:"name" binding:"required,max=200"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateQuoteRequest defines the data needed to create a quote.
type CreateQuoteRequest struct {
	Title        string            `json:"title" binding:"required,max=200"`
	Client       string            `json:"client" binding:"required,max=200"`
	Description  string            `json:"description"`
	PaymentTerms string            `json:"paymentTerms"`
	DeliveryDate *string           `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	LineItems    []LineItemRequest `json:"lineItems" binding:"dive"`
}

// UpdateQuoteRequest is a partial update. LineItems, when present, replace the whole list.
type UpdateQuoteRequest struct {
	Title        *string            `json:"title" binding:"omitempty,max=200"`
	Client       *string            `json:"client" binding:"omitempty,max=200"`
	Description  *string            `json:"description"`
	PaymentTerms *string            `json:"paymentTerms"`
	DeliveryDate *string            `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	LineItems    *[]LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
	Version      *int64             `json:"version"`
}

// UpdateQuoteStatusRequest moves a quote to another status.
type UpdateQuoteStatusRequest struct {
	Status  domain.QuoteStatus `json:"status" binding:"required,quotestatus"`
	Version *int64             `json:"version"`
}

// ListQuotesParams defines query parameters for listing quotes.
type ListQuotesParams struct {
	Status string `form:"status" binding:"omitempty,quotestatus"`
	Client string `form:"client"`
	Search string `form:"q"`
}

// ToDomain converts the params into a filter.
func (p ListQuotesParams) ToDomain() domain.QuoteFilter {
	f := domain.QuoteFilter{Client: p.Client, Search: p.Search}
	if p.Status != "" {
		s := domain.QuoteStatus(p.Status)
		f.Status = &s
	}
	return f
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// QuoteResponse defines the data returned for a quote. Totals are computed on every read.
type QuoteResponse struct {
	QuoteID            string               `json:"quoteID"`
	Title              string               `json:"title"`
	Client             string               `json:"client"`
	Description        string               `json:"description"`
	PaymentTerms       string               `json:"paymentTerms"`
	DeliveryDate       *string              `json:"deliveryDate,omitempty"`
	Status             domain.QuoteStatus   `json:"status"`
	StatusLabel        string               `json:"statusLabel"`
	AllowedTransitions []domain.QuoteStatus `json:"allowedTransitions"`
	CreatedDate        string               `json:"createdDate"`
	LineItems          []LineItemResponse   `json:"lineItems"`
	Total              string               `json:"total"`
	TotalDisplay       string               `json:"totalDisplay"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy      string               `json:"lastUpdatedBy"`
	Version            int64                `json:"version"`
}

// QuoteMutationResponse wraps a created or updated quote.
type QuoteMutationResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Quote   QuoteResponse `json:"quote"`
}

// ListQuotesResponse defines the response for listing quotes.
type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// QuoteStatsResponse counts quotes per status.
type QuoteStatsResponse struct {
	Total         int                        `json:"total"`
	ByStatus      map[domain.QuoteStatus]int `json:"byStatus"`
	TotalValue    string                     `json:"totalValue"`
	AcceptedValue string                     `json:"acceptedValue"`
}

// ClientsResponse lists distinct client names.
type ClientsResponse struct {
	Clients []string `json:"clients"`
}

// ToDomainLineItems converts requested line items.
func ToDomainLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, it := range items {
		out[i] = domain.LineItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return out
}

// ToQuoteResponse converts a domain.Quote to its DTO.
func ToQuoteResponse(q domain.Quote) QuoteResponse {
	items := make([]LineItemResponse, len(q.LineItems))
	for i, it := range q.LineItems {
		items[i] = LineItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: utils.FormatMoney(it.UnitPrice),
			Subtotal:  utils.FormatMoney(it.Subtotal()),
		}
	}
	total := q.Total()
	return QuoteResponse{
		QuoteID:            q.QuoteID,
		Title:              q.Title,
		Client:             q.Client,
		Description:        q.Description,
		PaymentTerms:       q.PaymentTerms,
		DeliveryDate:       formatOptionalDate(q.DeliveryDate),
		Status:             q.Status,
		StatusLabel:        domain.QuoteLifecycle.Label(q.Status),
		AllowedTransitions: domain.QuoteLifecycle.Allowed(q.Status),
		CreatedDate:        FormatDate(q.CreatedDate),
		LineItems:          items,
		Total:              utils.FormatMoney(total),
		TotalDisplay:       utils.FormatBRL(total),
		CreatedAt:          q.CreatedAt,
		CreatedBy:          q.CreatedBy,
		LastUpdatedAt:      q.LastUpdatedAt,
		LastUpdatedBy:      q.LastUpdatedBy,
		Version:            q.Version,
	}
}

// ToListQuotesResponse converts a slice of quotes.
func ToListQuotesResponse(quotes []domain.Quote) ListQuotesResponse {
	res := ListQuotesResponse{Quotes: make([]QuoteResponse, len(quotes))}
	for i, q := range quotes {
		res.Quotes[i] = ToQuoteResponse(q)
	}
	return res
}

// ToQuoteStatsResponse converts quote statistics.
func ToQuoteStatsResponse(s domain.QuoteStats) QuoteStatsResponse {
	return QuoteStatsResponse{
		Total:         s.Total,
		ByStatus:      s.ByStatus,
		TotalValue:    utils.FormatMoney(s.TotalValue),
		AcceptedValue: utils.FormatMoney(s.AcceptedValue),
	}
}

// ToClientsResponse never returns a nil list.
func ToClientsResponse(clients []string) ClientsResponse {
	if clients == nil {
		clients = []string{}
	}
	return ClientsResponse{Clients: clients}
}
