package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelQuote_AssignsPositions(t *testing.T) {
	q := domain.Quote{
		QuoteID: "q1",
		Status:  domain.QuoteStatusSent,
		LineItems: []domain.LineItem{
			{Name: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			{Name: "b", Quantity: 2, UnitPrice: decimal.NewFromInt(20)},
		},
	}

	header, items := mapping.ToModelQuote(q)
	assert.Equal(t, "sent", header.Status)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, 2, items[1].Position)
	assert.Equal(t, "q1", items[1].QuoteID)

	back := mapping.ToDomainQuote(header, items)
	assert.Equal(t, q.LineItems, back.LineItems)
	assert.NotNil(t, mapping.ToDomainQuote(header, nil).LineItems)
}

func TestContractDocumentMapping(t *testing.T) {
	uploaded := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := domain.Contract{
		ContractID: "c1",
		Document:   &domain.DocumentRef{Name: "contrato.pdf", StorageKey: "k", ContentType: "application/pdf", Size: 42, UploadedAt: uploaded},
	}

	m := mapping.ToModelContract(c)
	require.NotNil(t, m.DocumentKey)
	assert.Equal(t, "k", *m.DocumentKey)
	assert.Equal(t, c.Document, mapping.ToDomainContract(m).Document)

	assert.Nil(t, mapping.ToDomainContract(models.Contract{ContractID: "c2"}).Document)
}

func TestUserPasswordHashMapping(t *testing.T) {
	m := mapping.ToModelUser(domain.User{UserID: "u", AuthProvider: domain.ProviderGoogle})
	assert.Nil(t, m.PasswordHash)
	assert.Equal(t, "google", m.AuthProvider)

	hash := "$2a$10$abc"
	d := mapping.ToDomainUser(models.User{UserID: "u", PasswordHash: &hash})
	assert.Equal(t, hash, d.PasswordHash)
}
