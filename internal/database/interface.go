package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// TaskRepository is the task source consumed by the timer's checklist.
type TaskRepository interface {
	AddTask(ctx context.Context, title, date, description string) (models.Task, error)
	GetAllTasks(ctx context.Context) ([]models.Task, error)
	GetTasksForDay(ctx context.Context, date string) ([]models.Task, error)
	GetCompletedTasksForDay(ctx context.Context, date string) ([]models.CompletedTask, error)
	CompleteTask(ctx context.Context, id string, at time.Time) (bool, error)
	DeleteTask(ctx context.Context, id string) error
}

// SessionRepository defines study-log operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.StudySession) (int64, error)
	GetSessionsForDay(ctx context.Context, date string) ([]models.StudySession, error)
	GetDaySummary(ctx context.Context, date string) (models.DaySummary, error)
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	TaskRepository
	SessionRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
