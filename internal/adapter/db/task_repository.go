package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const (
	listTasksQuery = `
SELECT
  t.id, t.title, t.description, t.due_date, t.status, t.user_id, t.category_id,
  t.created_at, t.updated_at,
  c.category_name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.user_id = ?
ORDER BY t.created_at DESC, t.id DESC;
`

	selectTaskQuery = `
SELECT
  t.id, t.title, t.description, t.due_date, t.status, t.user_id, t.category_id,
  t.created_at, t.updated_at,
  c.category_name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.id = ? AND t.user_id = ?;
`

	insertTaskQuery = `
INSERT INTO tasks (title, description, due_date, status, category_id, user_id)
VALUES (?, ?, ?, ?, ?, ?);
`

	// Ownership lives in the WHERE clause, merge semantics in COALESCE; the
	// whole partial update is one scoped statement.
	updateTaskQuery = `
UPDATE tasks
SET title       = COALESCE(?, title),
    description = COALESCE(?, description),
    due_date    = COALESCE(?, due_date),
    status      = COALESCE(?, status),
    category_id = COALESCE(?, category_id),
    updated_at  = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?;
`

	deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	DueDate      sql.NullTime   `db:"due_date"`
	Status       string         `db:"status"`
	UserID       uint64         `db:"user_id"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	CategoryName sql.NullString `db:"category_name"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskQuery, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		input.Title,
		input.Description,
		nullableDate(input.DueDate),
		string(domain.TaskStatusPending),
		input.CategoryID,
		userID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindByIDAndUser(ctx, uint64(id), userID)
}

func (r *TaskRepository) Update(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var status *string
	if input.Status != nil {
		value := string(*input.Status)
		status = &value
	}

	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		input.Title,
		input.Description,
		nullableDate(input.DueDate),
		status,
		input.CategoryID,
		id,
		userID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	// Zero affected rows can mean "no change" as well as "not owned", so the
	// scoped re-read decides which.
	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID uint64) (domain.Task, error) {
	task, err := r.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}

	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id, userID)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return task, nil
}

func nullableDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format("2006-01-02")
	return &formatted
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CategoryID.Valid {
		value := uint64(row.CategoryID.Int64)
		task.CategoryID = &value
	}

	if row.CategoryName.Valid {
		value := row.CategoryName.String
		task.CategoryName = &value
	}

	return task
}
