package database

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// RecordSession appends a finished or skipped phase to the study log.
func (d *Database) RecordSession(ctx context.Context, s models.StudySession) (int64, error) {
	if s.Mode != models.ModePomodoro && s.Mode != models.ModeBreak {
		return 0, wrapSessionErr("record", 0, fmt.Errorf("unknown mode %q", s.Mode))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		res, err := d.DB.ExecContext(ctx, `
			INSERT INTO study_sessions (date, session_number, mode, credited_minutes, skipped, ended_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.Date, s.SessionNumber, string(s.Mode), s.CreditedMinutes, boolToInt(s.Skipped), s.EndedAt.UTC())
		if err != nil {
			return 0, wrapSessionErr("record", 0, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, wrapSessionErr("record", 0, err)
		}
		return id, nil
	})
}

// GetSessionsForDay returns the day's study log in the order it was written.
func (d *Database) GetSessionsForDay(ctx context.Context, date string) ([]models.StudySession, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.StudySession, error) {
		rows, err := d.DB.QueryContext(ctx, `
			SELECT id, date, session_number, mode, credited_minutes, skipped, ended_at
			FROM study_sessions
			WHERE date = ?
			ORDER BY ended_at ASC, id ASC`, date)
		if err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		defer rows.Close()

		var sessions []models.StudySession
		for rows.Next() {
			var s models.StudySession
			var mode string
			if err := rows.Scan(&s.ID, &s.Date, &s.SessionNumber, &mode, &s.CreditedMinutes, &s.Skipped, &s.EndedAt); err != nil {
				return nil, wrapSessionErr("list", 0, err)
			}
			s.Mode = models.Mode(mode)
			sessions = append(sessions, s)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		return sessions, nil
	})
}

// GetDaySummary aggregates the study log and the checklist of one day.
func (d *Database) GetDaySummary(ctx context.Context, date string) (models.DaySummary, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.DaySummary, error) {
		sum := models.DaySummary{Date: date}
		err := d.DB.QueryRowContext(ctx, `
			SELECT
				COALESCE(SUM(credited_minutes), 0),
				COALESCE(SUM(CASE WHEN mode = 'pomodoro' AND skipped = 0 THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN mode = 'pomodoro' AND skipped = 1 THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN mode = 'break' AND skipped = 0 THEN 1 ELSE 0 END), 0)
			FROM study_sessions WHERE date = ?`, date).
			Scan(&sum.StudyMinutes, &sum.PomodorosFinished, &sum.PomodorosSkipped, &sum.BreaksTaken)
		if err != nil {
			return sum, wrapSessionErr("summary", 0, err)
		}
		err = d.DB.QueryRowContext(ctx, `
			SELECT
				COALESCE(SUM(CASE WHEN completed_at IS NOT NULL THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN completed_at IS NULL THEN 1 ELSE 0 END), 0)
			FROM tasks WHERE date = ?`, date).
			Scan(&sum.TasksCompleted, &sum.TasksOpen)
		if err != nil {
			return sum, wrapTaskErr("summary", "", err)
		}
		return sum, nil
	})
}
