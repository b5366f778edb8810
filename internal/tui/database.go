package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	AddTask(ctx context.Context, title, date, description string) (models.Task, error)
	GetAllTasks(ctx context.Context) ([]models.Task, error)
	GetTasksForDay(ctx context.Context, date string) ([]models.Task, error)
	GetCompletedTasksForDay(ctx context.Context, date string) ([]models.CompletedTask, error)
	CompleteTask(ctx context.Context, id string, at time.Time) (bool, error)
	DeleteTask(ctx context.Context, id string) error

	RecordSession(ctx context.Context, s models.StudySession) (int64, error)
	GetSessionsForDay(ctx context.Context, date string) ([]models.StudySession, error)
	GetDaySummary(ctx context.Context, date string) (models.DaySummary, error)
}
