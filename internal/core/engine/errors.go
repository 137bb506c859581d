package engine

import (
	"fmt"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the scale of every NUMERIC money column.
const moneyPlaces = 2

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// hasCents reports whether d fits in whole cents. Trailing zeros are fine.
func hasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyPlaces))
}
