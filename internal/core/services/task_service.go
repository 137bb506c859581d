package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/google/uuid"
)

type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates the agenda service.
func NewTaskService(repo portsrepo.TaskRepositoryFacade, options ...ServiceOption) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: newBaseService(options),
		taskRepo:    repo,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, userID string) (*domain.Task, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	task, err := engine.ValidateTask(domain.Task{
		TaskID:      uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Kind:        req.Kind,
		Date:        date,
		Time:        req.Time,
		Client:      req.Client,
		Location:    req.Location,
		Description: req.Description,
		AuditFields: newAuditFields(s.Now(), userID),
	})
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("task_id", task.TaskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task created",
		slog.String("task_id", task.TaskID),
		slog.String("kind", string(task.Kind)))
	s.Publish(ctx, domain.EventTaskCreated, task.TaskID, userID, task.Version, map[string]any{
		"kind": task.Kind,
		"date": dto.FormatDate(task.Date),
	})
	return &task, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *taskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// GetTaskCalendar builds the month grid. Statistics cover every task the
// filter matches, not only the ones inside the month.
func (s *taskService) GetTaskCalendar(ctx context.Context, year, month int, filter domain.TaskFilter) (*domain.TaskAggregate, error) {
	if err := engine.ValidateMonth(year, month); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tasks for calendar",
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}
	agg, err := engine.AggregateTasks(tasks, filter, year, month)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (s *taskService) GetTaskStats(ctx context.Context, filter domain.TaskFilter) (*domain.TaskStats, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tasks for stats")
		return nil, err
	}
	stats := engine.SummarizeTasks(engine.FilterTasks(tasks, filter))
	return &stats, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	wasCompleted := task.Completed

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Kind != nil {
		task.Kind = *req.Kind
	}
	if req.Date != nil {
		if task.Date, err = dto.ParseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Time != nil {
		task.Time = req.Time
	}
	if req.Client != nil {
		task.Client = req.Client
	}
	if req.Location != nil {
		task.Location = req.Location
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	validated, err := engine.ValidateTask(*task)
	if err != nil {
		return nil, err
	}

	expected := touch(&validated.AuditFields, s.Now(), userID, req.Version)
	if err := s.taskRepo.UpdateTask(ctx, validated, expected); err != nil {
		s.LogError(ctx, err, "Failed to update task",
			slog.String("task_id", taskID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	s.Publish(ctx, domain.EventTaskUpdated, validated.TaskID, userID, validated.Version, nil)
	if wasCompleted != validated.Completed {
		s.publishCompletion(ctx, validated, userID)
	}
	return &validated, nil
}

func (s *taskService) SetTaskCompletion(ctx context.Context, taskID string, req dto.SetTaskCompletionRequest, userID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if req.Completed == nil {
		return task, nil
	}

	changed := task.Completed != *req.Completed
	task.Completed = *req.Completed
	expected := touch(&task.AuditFields, s.Now(), userID, req.Version)
	if err := s.taskRepo.UpdateTask(ctx, *task, expected); err != nil {
		s.LogError(ctx, err, "Failed to store task completion",
			slog.String("task_id", taskID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	if changed {
		s.publishCompletion(ctx, *task, userID)
	}
	return task, nil
}

func (s *taskService) publishCompletion(ctx context.Context, task domain.Task, userID string) {
	s.LogInfo(ctx, "Task completion changed",
		slog.String("task_id", task.TaskID),
		slog.Bool("completed", task.Completed))
	s.Publish(ctx, domain.EventTaskCompletionChanged, task.TaskID, userID, task.Version, map[string]any{
		"completed": task.Completed,
	})
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return err
	}
	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID), slog.String("user_id", userID))
	s.Publish(ctx, domain.EventTaskDeleted, taskID, userID, 0, nil)
	return nil
}
