package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaskKind classifies agenda items.
type TaskKind string

const (
	TaskKindCapture TaskKind = "capture"
	TaskKindEdit    TaskKind = "edit"
	TaskKindMeeting TaskKind = "meeting"
)

// TaskKinds lists every kind, in display order.
var TaskKinds = []TaskKind{TaskKindCapture, TaskKindEdit, TaskKindMeeting}

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	for _, known := range TaskKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ClockLayout is the HH:MM layout of a task's time of day.
const ClockLayout = "15:04"

// Task is a scheduled agenda item.
type Task struct {
	TaskID      string    `json:"taskID"`
	Title       string    `json:"title"`
	Kind        TaskKind  `json:"kind"`
	Date        time.Time `json:"date"`
	Time        *string   `json:"time,omitempty"`
	Client      *string   `json:"client,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	AuditFields
}

// TaskFilter is applied identically to calendar and statistics output.
type TaskFilter struct {
	Kind      *TaskKind
	Range     DateRange
	Completed *bool
	Client    string
}

// Matches reports whether t passes every set criterion.
func (f TaskFilter) Matches(t Task) bool {
	if f.Kind != nil && t.Kind != *f.Kind {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Range.Bounded() && !f.Range.Contains(t.Date) {
		return false
	}
	if f.Client != "" {
		if t.Client == nil || !strings.Contains(strings.ToLower(*t.Client), strings.ToLower(f.Client)) {
			return false
		}
	}
	return true
}

// CalendarMonth maps each day of a month to its tasks.
type CalendarMonth struct {
	Year          int            `json:"year"`
	Month         time.Month     `json:"month"`
	DaysInMonth   int            `json:"daysInMonth"`
	LeadingBlanks int            `json:"leadingBlanks"`
	Days          map[int][]Task `json:"days"`
}

// TaskStats summarizes completion over a task set.
type TaskStats struct {
	Total          int              `json:"total"`
	Completed      int              `json:"completed"`
	Pending        int              `json:"pending"`
	CompletionRate decimal.Decimal  `json:"completionRate"`
	ByKind         map[TaskKind]int `json:"byKind"`
}

// TaskAggregate is the calendar of one month plus statistics over the whole filtered set.
type TaskAggregate struct {
	Calendar CalendarMonth `json:"calendar"`
	Stats    TaskStats     `json:"stats"`
}
