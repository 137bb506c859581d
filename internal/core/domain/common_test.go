package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func TestDateRange_Contains(t *testing.T) {
	jan1, jan31 := day("2024-01-01"), day("2024-01-31")

	tests := []struct {
		name string
		r    domain.DateRange
		d    time.Time
		want bool
	}{
		{"open range holds zero date", domain.DateRange{}, time.Time{}, true},
		{"bounded range drops zero date", domain.DateRange{From: &jan1}, time.Time{}, false},
		{"lower bound inclusive", domain.DateRange{From: &jan1, To: &jan31}, jan1, true},
		{"upper bound inclusive with clock time", domain.DateRange{From: &jan1, To: &jan31}, jan31.Add(23 * time.Hour), true},
		{"after upper bound", domain.DateRange{To: &jan31}, day("2024-02-01"), false},
		{"before lower bound", domain.DateRange{From: &jan1}, day("2023-12-31"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.d))
		})
	}
}

func TestQuote_Total(t *testing.T) {
	q := domain.Quote{LineItems: []domain.LineItem{
		{Name: "Filmagem", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
		{Name: "Edição", Quantity: 1, UnitPrice: decimal.NewFromInt(300)},
	}}
	assert.True(t, decimal.NewFromInt(600).Equal(q.Total()))
	assert.True(t, decimal.Zero.Equal(domain.Quote{}.Total()))
}

func TestTaskFilter_Matches(t *testing.T) {
	meeting := domain.TaskKindMeeting
	task := domain.Task{Kind: domain.TaskKindMeeting, Date: day("2024-03-10"), Client: ptr("Studio Lumen"), Completed: true}

	assert.True(t, domain.TaskFilter{}.Matches(task))
	assert.True(t, domain.TaskFilter{Kind: &meeting, Completed: ptr(true), Client: "lumen"}.Matches(task))
	assert.False(t, domain.TaskFilter{Completed: ptr(false)}.Matches(task))
	assert.False(t, domain.TaskFilter{Client: "acme"}.Matches(task))
	assert.False(t, domain.TaskFilter{Range: domain.DateRange{To: ptr(day("2024-03-09"))}}.Matches(task))
	assert.False(t, domain.TaskFilter{Client: "x"}.Matches(domain.Task{}))
}

func TestLedgerSummary_SortedCategories(t *testing.T) {
	s := domain.LedgerSummary{Categories: map[string]domain.CategoryTotals{"b": {}, "a": {}, "c": {}}}
	assert.Equal(t, []string{"a", "b", "c"}, s.SortedCategories())
}
