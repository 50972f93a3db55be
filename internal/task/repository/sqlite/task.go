package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"atrova/internal/model"
	repo "atrova/internal/task/repository"
)

const taskColumns = `id, owner_id, title, due_at, completed, ai_scheduled, priority,
	duration_minutes, source, calendar_event_id, calendar_link, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, owner_id, title, due_at, completed, ai_scheduled, priority,
			duration_minutes, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	task := model.Task{
		ID:              uuid.NewString(),
		OwnerID:         opt.OwnerID,
		Title:           opt.Title,
		DueAt:           opt.DueAt,
		Completed:       opt.Completed,
		AIScheduled:     opt.AIScheduled,
		Priority:        opt.Priority,
		DurationMinutes: opt.DurationMinutes,
		Source:          opt.Source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Source == "" {
		task.Source = model.SourceAPI
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.OwnerID, task.Title, toUnix(task.DueAt), task.Completed, task.AIScheduled,
		string(task.Priority), task.DurationMinutes, string(task.Source),
		now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return r.reload(task), nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, where)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a page of Tasks and the total count of matching rows.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tail, tailArgs := r.buildPage(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s %s", taskColumns, where, tail)
	tasks, err := r.queryTasks(ctx, query, append(args, tailArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites the mutable columns of a Task.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, due_at = ?, completed = ?, ai_scheduled = ?, priority = ?,
			duration_minutes = ?, calendar_event_id = ?, calendar_link = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, toUnix(opt.DueAt), opt.Completed, opt.AIScheduled, string(opt.Priority),
		opt.DurationMinutes, opt.CalendarEventID, opt.CalendarLink, time.Now().UnixMilli(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a Task by ID. Deleting a missing row is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListDueBetween returns open tasks of every owner due in [From, To], earliest first.
func (r *implRepository) ListDueBetween(ctx context.Context, opt repo.ListDueBetweenOptions) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks
		WHERE completed = 0 AND due_at IS NOT NULL AND due_at >= ? AND due_at <= ?
		ORDER BY due_at ASC`, taskColumns)
	args := []any{opt.From.Unix(), opt.To.Unix()}
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	tasks, err := r.queryTasks(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDueBetween"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

func (r *implRepository) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// reload normalizes times to the precision they are stored with.
func (r *implRepository) reload(t model.Task) model.Task {
	t.DueAt = fromUnix(toUnix(t.DueAt))
	t.CreatedAt = time.UnixMilli(t.CreatedAt.UnixMilli())
	t.UpdatedAt = time.UnixMilli(t.UpdatedAt.UnixMilli())
	return t
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                  model.Task
		dueAt              sql.NullInt64
		priority, source   string
		createdAt, updated int64
	)
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &dueAt, &t.Completed, &t.AIScheduled, &priority,
		&t.DurationMinutes, &source, &t.CalendarEventID, &t.CalendarLink, &createdAt, &updated,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.Source = model.TaskSource(source)
	t.CreatedAt = time.UnixMilli(createdAt)
	t.UpdatedAt = time.UnixMilli(updated)
	if dueAt.Valid {
		t.DueAt = fromUnix(dueAt)
	}
	return t, nil
}

// Due times are stored as unix seconds so range scans compare numerically.
func toUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func fromUnix(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0)
	return &t
}
