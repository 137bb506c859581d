package dto

import (
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// CreateTaskRequest defines the data needed to schedule a task.
type CreateTaskRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Kind        domain.TaskKind `json:"kind" binding:"required,taskkind"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Time        *string         `json:"time" binding:"omitempty,hhmm"`
	Client      *string         `json:"client" binding:"omitempty,max=200"`
	Location    *string         `json:"location" binding:"omitempty,max=200"`
	Description *string         `json:"description"`
}

// UpdateTaskRequest is a partial update. An empty time string clears the time.
type UpdateTaskRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Kind        *domain.TaskKind `json:"kind" binding:"omitempty,taskkind"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string          `json:"time" binding:"omitempty,hhmm"`
	Client      *string          `json:"client" binding:"omitempty,max=200"`
	Location    *string          `json:"location" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	Completed   *bool            `json:"completed"`
	Version     *int64           `json:"version"`
}

// SetTaskCompletionRequest toggles the completion flag.
type SetTaskCompletionRequest struct {
	Completed *bool  `json:"completed" binding:"required"`
	Version   *int64 `json:"version"`
}

// ListTasksParams defines the task filter shared by listing, calendar and statistics.
type ListTasksParams struct {
	DateRangeParams
	Kind      string `form:"kind" binding:"omitempty,taskkind"`
	Completed *bool  `form:"completed"`
	Client    string `form:"client"`
}

// ToDomain converts the params into a filter.
func (p ListTasksParams) ToDomain() (domain.TaskFilter, error) {
	window, err := p.DateRangeParams.ToDomain()
	if err != nil {
		return domain.TaskFilter{}, err
	}
	f := domain.TaskFilter{Range: window, Completed: p.Completed, Client: p.Client}
	if p.Kind != "" {
		k := domain.TaskKind(p.Kind)
		f.Kind = &k
	}
	return f, nil
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID        string          `json:"taskID"`
	Title         string          `json:"title"`
	Kind          domain.TaskKind `json:"kind"`
	Date          string          `json:"date"`
	Time          *string         `json:"time,omitempty"`
	Client        *string         `json:"client,omitempty"`
	Location      *string         `json:"location,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Completed     bool            `json:"completed"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
	Version       int64           `json:"version"`
}

// TaskMutationResponse wraps a created or updated task.
type TaskMutationResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Task    TaskResponse `json:"task"`
}

// ListTasksResponse defines the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskStatsResponse summarizes completion. CompletionRate is a percentage with one decimal.
type TaskStatsResponse struct {
	Total          int                     `json:"total"`
	Completed      int                     `json:"completed"`
	Pending        int                     `json:"pending"`
	CompletionRate float64                 `json:"completionRate"`
	ByKind         map[domain.TaskKind]int `json:"byKind"`
}

// CalendarResponse is one month of tasks plus statistics over the filtered set.
type CalendarResponse struct {
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	DaysInMonth   int                    `json:"daysInMonth"`
	LeadingBlanks int                    `json:"leadingBlanks"`
	Days          map[int][]TaskResponse `json:"days"`
	Stats         TaskStatsResponse      `json:"stats"`
}

// ToTaskResponse converts a domain.Task to its DTO.
func ToTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.TaskID,
		Title:         t.Title,
		Kind:          t.Kind,
		Date:          FormatDate(t.Date),
		Time:          t.Time,
		Client:        t.Client,
		Location:      t.Location,
		Description:   t.Description,
		Completed:     t.Completed,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
		Version:       t.Version,
	}
}

func toTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}

// ToListTasksResponse converts a slice of tasks.
func ToListTasksResponse(tasks []domain.Task) ListTasksResponse {
	return ListTasksResponse{Tasks: toTaskResponses(tasks)}
}

// ToTaskStatsResponse converts task statistics.
func ToTaskStatsResponse(s domain.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		Total:          s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		CompletionRate: s.CompletionRate.InexactFloat64(),
		ByKind:         s.ByKind,
	}
}

// ToCalendarResponse converts a task aggregate.
func ToCalendarResponse(a domain.TaskAggregate) CalendarResponse {
	days := make(map[int][]TaskResponse, len(a.Calendar.Days))
	for d, tasks := range a.Calendar.Days {
		days[d] = toTaskResponses(tasks)
	}
	return CalendarResponse{
		Year:          a.Calendar.Year,
		Month:         int(a.Calendar.Month),
		DaysInMonth:   a.Calendar.DaysInMonth,
		LeadingBlanks: a.Calendar.LeadingBlanks,
		Days:          days,
		Stats:         ToTaskStatsResponse(a.Stats),
	}
}
