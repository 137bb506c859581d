package pgsql

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `task_id, title, kind, task_date, task_time, client, location, description, completed,
	created_at, created_by, last_updated_at, last_updated_by, version`

// PgxTaskRepository implements portsrepo.TaskRepositoryFacade using pgx.
type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	m := mapping.ToModelTask(task)
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TaskID, m.Title, m.Kind, m.TaskDate, m.TaskTime, m.Client, m.Location, m.Description, m.Completed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapDBError(err, "failed to save task")
	}
	return nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task, expectedVersion int64) error {
	m := mapping.ToModelTask(task)
	query := `
		UPDATE tasks
		SET title = $2, kind = $3, task_date = $4, task_time = $5, client = $6, location = $7,
			description = $8, completed = $9, last_updated_at = $10, last_updated_by = $11, version = $12
		WHERE task_id = $1 AND version = $13;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TaskID, m.Title, m.Kind, m.TaskDate, m.TaskTime, m.Client, m.Location, m.Description, m.Completed,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version, expectedVersion,
	)
	if err != nil {
		return mapDBError(err, "failed to update task")
	}
	return r.checkVersionedWrite(ctx, r.Pool, "tasks", "task_id", m.TaskID, tag.RowsAffected())
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return mapDBError(err, "failed to delete task")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return nil, mapDBError(err, "failed to find task")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return nil, mapDBError(err, "failed to find task "+taskID)
	}
	task := mapping.ToDomainTask(m)
	return &task, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	w := &whereBuilder{}
	if filter.Kind != nil {
		w.add("kind = ?", string(*filter.Kind))
	}
	if filter.Range.From != nil {
		w.add("task_date >= ?", *filter.Range.From)
	}
	if filter.Range.To != nil {
		w.add("task_date <= ?", *filter.Range.To)
	}
	if filter.Completed != nil {
		w.add("completed = ?", *filter.Completed)
	}
	if filter.Client != "" {
		w.add("client ILIKE ?", likePattern(filter.Client))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks` + w.clause() + ` ORDER BY task_date, task_time NULLS LAST, created_at;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapDBError(err, "failed to list tasks")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return nil, mapDBError(err, "failed to scan tasks")
	}
	return mapping.ToDomainTaskSlice(ms), nil
}
