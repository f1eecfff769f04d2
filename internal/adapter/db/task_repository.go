package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const (
	taskColumns = `id, user_id, title, description, due_date, priority, completed, created_at, updated_at`

	insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, due_date, priority, completed, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	getTaskByOwnerQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`

	deleteTaskByOwnerQuery = `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	countTasksByOwnerQuery = `
SELECT
  COUNT(*) AS total,
  COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed
FROM tasks
WHERE user_id = ?`
)

// sortColumns whitelists ORDER BY targets. priority is a plain string
// column, so it orders by label text, not by severity.
var sortColumns = map[domain.SortField]string{
	domain.SortByCreatedAt: "created_at",
	domain.SortByDueDate:   "due_date",
	domain.SortByPriority:  "priority",
}

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullTime   `db:"due_date"`
	Priority    string         `db:"priority"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(insertTaskQuery),
		task.UserID,
		task.Title,
		nullString(task.Description),
		nullTime(task.DueDate),
		string(task.Priority),
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task id: %w", err)
	}

	task.ID = uint64(id)
	return task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint64, query domain.ListTasksQuery) ([]domain.Task, error) {
	statement, args := buildListTasksQuery(ownerID, query)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(statement), args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByOwner(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getTaskByOwnerQuery), taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("select task: %w", err)
	}

	return mapTaskRowToDomainTask(row), nil
}

// Update writes only the attributes present in changes, plus updated_at,
// and returns the row as stored afterwards.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID uint64, changes domain.UpdateTaskInput, updatedAt time.Time) (domain.Task, error) {
	statement, args := buildUpdateTaskQuery(ownerID, taskID, changes, updatedAt)
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(statement), args...); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	// MySQL reports zero affected rows when nothing changed, so existence
	// is decided by the re-read.
	return r.GetByOwner(ctx, ownerID, taskID)
}

func (r *TaskRepository) DeleteByOwner(ctx context.Context, ownerID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTaskByOwnerQuery), taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return requireAffected(result)
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID uint64) (domain.TaskStats, error) {
	var counts struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
	}
	if err := r.db.GetContext(ctx, &counts, r.db.Rebind(countTasksByOwnerQuery), ownerID); err != nil {
		return domain.TaskStats{}, fmt.Errorf("count tasks: %w", err)
	}

	return domain.TaskStats{
		Total:     counts.Total,
		Completed: counts.Completed,
		Pending:   counts.Total - counts.Completed,
	}, nil
}

func buildUpdateTaskQuery(ownerID, taskID uint64, changes domain.UpdateTaskInput, updatedAt time.Time) (string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 8)

	if changes.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.DescriptionSet || changes.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullString(changes.Description))
	}
	if changes.DueDateSet || changes.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullTime(changes.DueDate))
	}
	if changes.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*changes.Priority))
	}
	if changes.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *changes.Completed)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, taskID, ownerID)

	return `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND user_id = ?`, args
}

func buildListTasksQuery(ownerID uint64, query domain.ListTasksQuery) (string, []any) {
	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = sortColumns[domain.SortByCreatedAt]
	}

	direction := "DESC"
	if query.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	statement := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{ownerID}
	if query.Completed != nil {
		statement += ` AND completed = ?`
		args = append(args, *query.Completed)
	}

	// id breaks ties so equal keys keep a stable order between calls.
	statement += fmt.Sprintf(` ORDER BY %s %s, id %s`, column, direction, direction)

	return statement, args
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Priority:  domain.Priority(row.Priority),
		Completed: row.Completed,
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

	return task
}
