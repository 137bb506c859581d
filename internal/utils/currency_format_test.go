package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1234.50", FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "0.13", FormatMoney(decimal.RequireFromString("0.125")))
	assert.Equal(t, "-10.00", FormatMoney(decimal.NewFromInt(-10)))
}

func TestFormatBRL(t *testing.T) {
	tests := map[string]string{
		"0":          "R$ 0,00",
		"5.5":        "R$ 5,50",
		"999.99":     "R$ 999,99",
		"1000":       "R$ 1.000,00",
		"1234567.8":  "R$ 1.234.567,80",
		"-1234.5":    "-R$ 1.234,50",
		"100000.001": "R$ 100.000,00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatBRL(decimal.RequireFromString(in)), in)
	}
}
