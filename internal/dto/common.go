package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// MutationResponse is the envelope of every mutating endpoint without a body.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is returned by every endpoint on failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DateRangeParams are the optional start_date/end_date query parameters.
type DateRangeParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ToDomain parses both bounds. Empty values leave the bound open.
func (p DateRangeParams) ToDomain() (domain.DateRange, error) {
	from, err := ParseOptionalDate(p.StartDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := ParseOptionalDate(p.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return domain.DateRange{}, fmt.Errorf("%w: end_date must not be before start_date", apperrors.ErrValidation)
	}
	return domain.DateRange{From: from, To: to}, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for optional values; empty input yields nil.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
