package services

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// TaskReaderSvc defines read operations for the task agenda
type TaskReaderSvc interface {
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)

	// GetTaskCalendar lays the filtered tasks of one month out on a calendar and
	// computes statistics over the whole filtered set.
	GetTaskCalendar(ctx context.Context, year, month int, filter domain.TaskFilter) (*domain.TaskAggregate, error)

	GetTaskStats(ctx context.Context, filter domain.TaskFilter) (*domain.TaskStats, error)
}

// TaskWriterSvc defines write operations for the task agenda
type TaskWriterSvc interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, userID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error)
	SetTaskCompletion(ctx context.Context, taskID string, req dto.SetTaskCompletionRequest, userID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string, userID string) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
