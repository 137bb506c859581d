package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeParams(t *testing.T) {
	r, err := DateRangeParams{}.ToDomain()
	require.NoError(t, err)
	assert.False(t, r.Bounded())

	r, err = DateRangeParams{StartDate: "2024-03-01", EndDate: "2024-03-31"}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", FormatDate(*r.From))
	assert.Equal(t, "2024-03-31", FormatDate(*r.To))

	_, err = DateRangeParams{StartDate: "01/03/2024"}.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = DateRangeParams{StartDate: "2024-03-31", EndDate: "2024-03-01"}.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToQuoteResponse(t *testing.T) {
	q := domain.Quote{
		QuoteID:     "q-1",
		Title:       "Ensaio",
		Client:      "Ana",
		Status:      domain.QuoteStatusSent,
		CreatedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		LineItems: []domain.LineItem{
			{Name: "Fotos", Quantity: 2, UnitPrice: decimal.RequireFromString("1500")},
			{Name: "Album", Quantity: 1, UnitPrice: decimal.RequireFromString("350.5")},
		},
	}

	res := ToQuoteResponse(q)
	assert.Equal(t, "3350.50", res.Total)
	assert.Equal(t, "R$ 3.350,50", res.TotalDisplay)
	assert.Equal(t, "3000.00", res.LineItems[0].Subtotal)
	assert.Equal(t, "350.50", res.LineItems[1].UnitPrice)
	assert.Equal(t, "Enviado", res.StatusLabel)
	assert.ElementsMatch(t, []domain.QuoteStatus{domain.QuoteStatusAccepted, domain.QuoteStatusRejected}, res.AllowedTransitions)
	assert.Equal(t, "2024-03-01", res.CreatedDate)
	assert.Nil(t, res.DeliveryDate)
}

func TestListQuotesParamsToDomain(t *testing.T) {
	f := ListQuotesParams{Status: "accepted", Client: "Ana", Search: "album"}.ToDomain()
	require.NotNil(t, f.Status)
	assert.Equal(t, domain.QuoteStatusAccepted, *f.Status)
	assert.Equal(t, "album", f.Search)

	assert.Nil(t, ListQuotesParams{}.ToDomain().Status)
}

func TestCreateContractRequestParseValue(t *testing.T) {
	v, err := CreateContractRequest{Value: "1500,75"}.ParseValue()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1500.75").Equal(v))

	_, err = CreateContractRequest{Value: "abc"}.ParseValue()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToContractResponse(t *testing.T) {
	c := domain.ContractWithStatus{
		Contract: domain.Contract{
			ContractID: "c-1",
			Value:      decimal.NewFromInt(2000),
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			Document:   &domain.DocumentRef{Name: "c.pdf", StorageKey: "2024/01/x_c.pdf", ContentType: "application/pdf", Size: 10},
		},
		View: domain.ContractStatusView{Status: domain.ContractStatusActive, DaysRemaining: 16, ExpiringSoon: true},
	}

	res := ToContractResponse(c)
	assert.Equal(t, "2000.00", res.Value)
	assert.Equal(t, "Ativo", res.StatusLabel)
	assert.Equal(t, 16, res.DaysRemaining)
	assert.True(t, res.ExpiringSoon)
	require.NotNil(t, res.Document)
	assert.Equal(t, "c.pdf", res.Document.Name)
}

func TestListTasksParamsToDomain(t *testing.T) {
	done := true
	f, err := ListTasksParams{
		DateRangeParams: DateRangeParams{StartDate: "2024-03-01"},
		Kind:            "meeting",
		Completed:       &done,
	}.ToDomain()
	require.NoError(t, err)
	require.NotNil(t, f.Kind)
	assert.Equal(t, domain.TaskKindMeeting, *f.Kind)
	assert.True(t, *f.Completed)
	assert.Nil(t, f.Range.To)
}

func TestToCalendarResponse(t *testing.T) {
	agg := domain.TaskAggregate{
		Calendar: domain.CalendarMonth{
			Year:          2024,
			Month:         time.March,
			DaysInMonth:   31,
			LeadingBlanks: 5,
			Days: map[int][]domain.Task{
				4: {{TaskID: "t-1", Kind: domain.TaskKindCapture, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}},
			},
		},
		Stats: domain.TaskStats{Total: 3, Completed: 1, Pending: 2, CompletionRate: decimal.RequireFromString("33.3")},
	}

	res := ToCalendarResponse(agg)
	assert.Equal(t, 3, res.Month)
	assert.Len(t, res.Days[4], 1)
	assert.Equal(t, "2024-03-04", res.Days[4][0].Date)
	assert.InDelta(t, 33.3, res.Stats.CompletionRate, 1e-9)
}
