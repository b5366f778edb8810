package testutil

import (
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        "task-1",
			Title:     "Test Task",
			Date:      time.Now().Format("2006-01-02"),
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithDate(date string) *TaskBuilder {
	b.task.Date = date
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.task.Description = d
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// SessionBuilder provides fluent API for creating study log records.
type SessionBuilder struct {
	session models.StudySession
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.StudySession{
			Date:            time.Now().Format("2006-01-02"),
			SessionNumber:   1,
			Mode:            models.ModePomodoro,
			CreditedMinutes: 25,
			EndedAt:         time.Now(),
		},
	}
}

func (b *SessionBuilder) WithDate(date string) *SessionBuilder {
	b.session.Date = date
	return b
}

func (b *SessionBuilder) WithNumber(n int) *SessionBuilder {
	b.session.SessionNumber = n
	return b
}

func (b *SessionBuilder) WithMode(m models.Mode) *SessionBuilder {
	b.session.Mode = m
	if m == models.ModeBreak {
		b.session.CreditedMinutes = 0
	}
	return b
}

func (b *SessionBuilder) Skipped() *SessionBuilder {
	b.session.Skipped = true
	b.session.CreditedMinutes = 0
	return b
}

func (b *SessionBuilder) WithCredit(minutes float64) *SessionBuilder {
	b.session.CreditedMinutes = minutes
	return b
}

func (b *SessionBuilder) Build() models.StudySession {
	return b.session
}
