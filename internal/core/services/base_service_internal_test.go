package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayUsesLocalCalendarDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 22:30 local is already the next day in UTC.
	late := time.Date(2024, 5, 2, 22, 30, 0, 0, saoPaulo)
	b := newBaseService([]ServiceOption{WithClock(func() time.Time { return late })})

	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), b.Today())
}
