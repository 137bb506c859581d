package repositories

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// TaskReader defines read operations for tasks
type TaskReader interface {
	// FindTaskByID retrieves a task.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks retrieves the tasks matching filter ordered by date, then time (untimed last).
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
}

// TaskWriter defines write operations for tasks
type TaskWriter interface {
	SaveTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task, expectedVersion int64) error
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
