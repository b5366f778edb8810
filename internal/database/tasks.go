package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/google/uuid"
)

const taskColumns = "id, title, date, description, created_at"

// AddTask stores a new task for the given ISO day.
func (d *Database) AddTask(ctx context.Context, title, date, description string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, wrapTaskErr("add", "", ErrEmptyTitle)
	}
	if _, err := time.Parse(config.DayLayout, date); err != nil {
		return models.Task{}, wrapTaskErr("add", "", ErrInvalidDate)
	}
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Date:        date,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO tasks (id, title, date, description, created_at) VALUES (?, ?, ?, ?, ?)",
			task.ID, task.Title, task.Date, nullableString(task.Description), task.CreatedAt)
		return err
	})
	if err != nil {
		return models.Task{}, wrapTaskErr("add", task.ID, err)
	}
	return task, nil
}

// GetAllTasks returns every open task ordered by day, then creation.
func (d *Database) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return d.queryTasks(ctx, "list",
		"SELECT "+taskColumns+" FROM tasks WHERE completed_at IS NULL ORDER BY date ASC, created_at ASC, rowid ASC")
}

// GetTasksForDay returns the open tasks of a single day.
func (d *Database) GetTasksForDay(ctx context.Context, date string) ([]models.Task, error) {
	return d.queryTasks(ctx, "list day",
		"SELECT "+taskColumns+" FROM tasks WHERE date = ? AND completed_at IS NULL ORDER BY created_at ASC, rowid ASC", date)
}

// GetCompletedTasksForDay returns the day's checked-off tasks in completion order.
func (d *Database) GetCompletedTasksForDay(ctx context.Context, date string) ([]models.CompletedTask, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.CompletedTask, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT "+taskColumns+", completed_at FROM tasks WHERE date = ? AND completed_at IS NOT NULL ORDER BY completed_at ASC, rowid ASC", date)
		if err != nil {
			return nil, wrapTaskErr("list completed", "", err)
		}
		defer rows.Close()

		var tasks []models.CompletedTask
		for rows.Next() {
			var ct models.CompletedTask
			var desc sql.NullString
			if err := rows.Scan(&ct.ID, &ct.Title, &ct.Date, &desc, &ct.CreatedAt, &ct.CompletedAt); err != nil {
				return nil, wrapTaskErr("list completed", "", err)
			}
			ct.Description = desc.String
			tasks = append(tasks, ct)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapTaskErr("list completed", "", err)
		}
		return tasks, nil
	})
}

// CompleteTask stamps a task as done. It reports false when the task was
// already completed; completion is never reversed.
func (d *Database) CompleteTask(ctx context.Context, id string, at time.Time) (bool, error) {
	changed := false
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var completedAt sql.NullTime
		err := tx.QueryRowContext(ctx, "SELECT completed_at FROM tasks WHERE id = ?", id).Scan(&completedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		if err != nil {
			return err
		}
		if completedAt.Valid {
			return nil
		}
		if _, err := tx.ExecContext(ctx, "UPDATE tasks SET completed_at = ? WHERE id = ?", at.UTC(), id); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, wrapTaskErr("complete", id, err)
	}
	return changed, nil
}

// DeleteTask removes a task.
func (d *Database) DeleteTask(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return wrapTaskErr("delete", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return wrapTaskErr("delete", id, ErrTaskNotFound)
		}
		return nil
	})
}

func (d *Database) queryTasks(ctx context.Context, op string, query string, args ...interface{}) ([]models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Task, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapTaskErr(op, "", err)
		}
		defer rows.Close()

		var tasks []models.Task
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return nil, wrapTaskErr(op, "", err)
			}
			tasks = append(tasks, t)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapTaskErr(op, "", err)
		}
		return tasks, nil
	})
}

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	var desc sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &t.Date, &desc, &t.CreatedAt); err != nil {
		return t, err
	}
	t.Description = desc.String
	return t, nil
}
