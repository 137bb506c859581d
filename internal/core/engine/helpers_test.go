package engine_test

import (
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
