package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	minCalendarYear = 2000
	maxCalendarYear = 2100
)

// AggregateTasks filters tasks once and derives both the month calendar and
// statistics from the same filtered set. Statistics cover every filtered task,
// not only those of the displayed month.
func AggregateTasks(tasks []domain.Task, filter domain.TaskFilter, year, month int) (domain.TaskAggregate, error) {
	if err := ValidateMonth(year, month); err != nil {
		return domain.TaskAggregate{}, err
	}

	filtered := FilterTasks(tasks, filter)
	return domain.TaskAggregate{
		Calendar: BuildCalendar(filtered, year, time.Month(month)),
		Stats:    SummarizeTasks(filtered),
	}, nil
}

// ValidateMonth bounds calendar requests to a sane range.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return invalidf("month must be between 1 and 12")
	}
	if year < minCalendarYear || year > maxCalendarYear {
		return invalidf("year must be between %d and %d", minCalendarYear, maxCalendarYear)
	}
	return nil
}

// FilterTasks returns the tasks matching filter, ordered by date then time.
func FilterTasks(tasks []domain.Task, filter domain.TaskFilter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	SortTasks(out)
	return out
}

// SortTasks orders by date, then time of day. Tasks without a time go last within their day.
func SortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := domain.DateOf(tasks[i].Date), domain.DateOf(tasks[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		ti, tj := tasks[i].Time, tasks[j].Time
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return *ti < *tj
		}
	})
}

// BuildCalendar places tasks on the days of one month. Days without tasks are absent.
func BuildCalendar(tasks []domain.Task, year int, month time.Month) domain.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	cal := domain.CalendarMonth{
		Year:          year,
		Month:         month,
		DaysInMonth:   first.AddDate(0, 1, -1).Day(),
		LeadingBlanks: int(first.Weekday()),
		Days:          make(map[int][]domain.Task),
	}

	for _, t := range tasks {
		y, m, d := domain.DateOf(t.Date).Date()
		if y != year || m != month {
			continue
		}
		cal.Days[d] = append(cal.Days[d], t)
	}
	return cal
}

// SummarizeTasks computes completion statistics. The rate is a percentage with one decimal.
func SummarizeTasks(tasks []domain.Task) domain.TaskStats {
	stats := domain.TaskStats{
		CompletionRate: decimal.Zero,
		ByKind:         make(map[domain.TaskKind]int, len(domain.TaskKinds)),
	}
	for _, k := range domain.TaskKinds {
		stats.ByKind[k] = 0
	}

	for _, t := range tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
		stats.ByKind[t.Kind]++
	}
	stats.Pending = stats.Total - stats.Completed

	if stats.Total > 0 {
		stats.CompletionRate = decimal.NewFromInt(int64(stats.Completed * 100)).
			Div(decimal.NewFromInt(int64(stats.Total))).
			Round(1)
	}
	return stats
}

// ValidateTask checks a task before it is stored and normalizes its time of day.
func ValidateTask(t domain.Task) (domain.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return domain.Task{}, invalidf("title is required")
	}
	if !t.Kind.Valid() {
		return domain.Task{}, invalidf("task kind must be one of capture, edit, meeting")
	}
	if t.Date.IsZero() {
		return domain.Task{}, invalidf("date is required")
	}
	if t.Time != nil {
		clock, err := NormalizeClock(*t.Time)
		if err != nil {
			return domain.Task{}, err
		}
		t.Time = clock
	}
	return t, nil
}

// NormalizeClock parses an HH:MM value. An empty string means "no time".
func NormalizeClock(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.ClockLayout, s)
	if err != nil {
		return nil, invalidf("time must use the HH:MM format")
	}
	out := parsed.Format(domain.ClockLayout)
	return &out, nil
}
