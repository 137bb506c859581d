package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fraction digits used for every amount (BRL).
const MoneyPrecision = 2

// FormatMoney renders an amount with exactly two fraction digits.
// Example: 1234.5 returns "1234.50"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// FormatBRL renders an amount for display in the pt-BR locale.
// Example: -1234.5 returns "-R$ 1.234,50"
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(MoneyPrecision)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
