package models

import "time"

// Mode enumerates the two phases of the study cycle.
type Mode string

const (
	ModePomodoro Mode = "pomodoro"
	ModeBreak    Mode = "break"
)

// Other returns the opposite phase.
func (m Mode) Other() Mode {
	if m == ModeBreak {
		return ModePomodoro
	}
	return ModeBreak
}

// Label is the display name of the phase.
func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break"
	}
	return "Pomodoro"
}

// Task is a checklist item supplied by the task source.
type Task struct {
	ID          string
	Title       string
	Date        string // ISO day, 2006-01-02
	Description string
	CreatedAt   time.Time
}

// CompletedTask is a task that was checked off. Completion is terminal.
type CompletedTask struct {
	Task
	CompletedAt time.Time
}

// StudySession records one finished or skipped phase.
type StudySession struct {
	ID              int64
	Date            string
	SessionNumber   int
	Mode            Mode
	CreditedMinutes float64
	Skipped         bool
	EndedAt         time.Time
}

// DaySummary aggregates the study log and checklist for a single day.
type DaySummary struct {
	Date              string
	StudyMinutes      float64
	PomodorosFinished int
	PomodorosSkipped  int
	BreaksTaken       int
	TasksCompleted    int
	TasksOpen         int
}
