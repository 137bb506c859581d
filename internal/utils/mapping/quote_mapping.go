package mapping

import (
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
)

// ToModelQuote splits a domain Quote into its header row and ordered line item rows.
func ToModelQuote(d domain.Quote) (models.Quote, []models.QuoteLineItem) {
	header := models.Quote{
		QuoteID:      d.QuoteID,
		Title:        d.Title,
		Client:       d.Client,
		Description:  d.Description,
		PaymentTerms: d.PaymentTerms,
		DeliveryDate: d.DeliveryDate,
		Status:       string(d.Status),
		CreatedDate:  domain.DateOf(d.CreatedDate),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	items := make([]models.QuoteLineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = models.QuoteLineItem{
			QuoteID:   d.QuoteID,
			Position:  i + 1,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}
	return header, items
}

// ToDomainQuote joins a header row with its line items. Items must already be ordered.
func ToDomainQuote(m models.Quote, items []models.QuoteLineItem) domain.Quote {
	d := domain.Quote{
		QuoteID:      m.QuoteID,
		Title:        m.Title,
		Client:       m.Client,
		Description:  m.Description,
		PaymentTerms: m.PaymentTerms,
		DeliveryDate: m.DeliveryDate,
		Status:       domain.QuoteStatus(m.Status),
		CreatedDate:  domain.DateOf(m.CreatedDate),
		LineItems:    make([]domain.LineItem, len(items)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	for i, li := range items {
		d.LineItems[i] = domain.LineItem{Name: li.Name, Quantity: li.Quantity, UnitPrice: li.UnitPrice}
	}
	return d
}
