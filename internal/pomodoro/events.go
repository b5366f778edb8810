package pomodoro

import (
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// EventType names the transition produced by Tick or Skip.
type EventType string

const (
	EventNone              EventType = ""
	EventPomodoroCompleted EventType = "pomodoro_completed"
	EventBreakCompleted    EventType = "break_completed"
	EventPomodoroSkipped   EventType = "pomodoro_skipped"
	EventBreakSkipped      EventType = "break_skipped"
)

// Event describes a phase transition for observers.
type Event struct {
	Type EventType
	From models.Mode
	To   models.Mode
	// Session is the session number the finished phase belonged to.
	Session         int
	CreditedMinutes float64
	// PlanComplete is set when the final Pomodoro of the plan ended and the
	// timer stopped instead of advancing.
	PlanComplete bool
	At           time.Time
}

// IsZero reports whether no transition happened.
func (e Event) IsZero() bool {
	return e.Type == EventNone
}

// Skipped reports whether the transition was forced by Skip.
func (e Event) Skipped() bool {
	return e.Type == EventPomodoroSkipped || e.Type == EventBreakSkipped
}
