package domain

import "time"

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
	Version       int64     `json:"version"`
}

// DateRange is an inclusive window of calendar days. A nil bound is open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Bounded reports whether at least one side of the range is set.
func (r DateRange) Bounded() bool {
	return r.From != nil || r.To != nil
}

// Contains reports whether the calendar day of d lies inside the range.
// A zero date is only contained by a fully open range.
func (r DateRange) Contains(d time.Time) bool {
	if d.IsZero() {
		return !r.Bounded()
	}
	day := DateOf(d)
	if r.From != nil && day.Before(DateOf(*r.From)) {
		return false
	}
	if r.To != nil && day.After(DateOf(*r.To)) {
		return false
	}
	return true
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
