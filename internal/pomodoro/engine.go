// Package pomodoro implements the study session timer: a Pomodoro/Break
// countdown with a session plan, study-time credit and a daily checklist.
//
// The engine is a plain state machine. It never blocks, never fails and holds
// no locks, so it must be driven from a single goroutine. Ticks are supplied
// by the caller once per second while the timer runs; Generation identifies the
// currently armed tick source so stale ticks can be discarded.
package pomodoro

import (
	"iter"
	"math"
	"time"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/akyairhashvil/studyclock/internal/util"
)

// Settings holds the phase durations in seconds.
type Settings struct {
	PomodoroSeconds int
	BreakSeconds    int
}

// DefaultSettings returns the stock 25/5 cycle.
func DefaultSettings() Settings {
	return Settings{
		PomodoroSeconds: config.DefaultPomodoroMinutes * 60,
		BreakSeconds:    config.DefaultBreakMinutes * 60,
	}
}

// Seconds returns the full duration of the given phase.
func (s Settings) Seconds(mode models.Mode) int {
	if mode == models.ModeBreak {
		return s.BreakSeconds
	}
	return s.PomodoroSeconds
}

func (s Settings) normalized() Settings {
	s.PomodoroSeconds = util.Clamp(s.PomodoroSeconds, config.MinPhaseSeconds, config.MaxPhaseMinutes*60)
	s.BreakSeconds = util.Clamp(s.BreakSeconds, config.MinPhaseSeconds, config.MaxPhaseMinutes*60)
	return s
}

// minutesToSeconds clamps minutes to [1, MaxPhaseMinutes] before converting,
// so oversized input cannot overflow.
func minutesToSeconds(minutes int) int {
	return util.Clamp(minutes, 1, config.MaxPhaseMinutes) * 60
}

// Plan is the study target and the number of Pomodoros it yields.
type Plan struct {
	TotalStudyMinutes int
	TotalSessions     int
}

// State is a snapshot of the countdown.
type State struct {
	Mode                    models.Mode
	RemainingSeconds        int
	Running                 bool
	CurrentSession          int
	AccumulatedStudyMinutes float64
	TimeConfigured          bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithClock overrides the time source used for events and task completion.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSettings sets the initial phase durations, bounded to
// [1 minute, MaxPhaseMinutes].
func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = s.normalized()
	}
}

// WithPhaseMinutes sets the initial phase durations in minutes, clamped like
// UpdateSettings.
func WithPhaseMinutes(pomodoroMinutes, breakMinutes int) Option {
	return func(e *Engine) {
		e.settings = Settings{
			PomodoroSeconds: minutesToSeconds(pomodoroMinutes),
			BreakSeconds:    minutesToSeconds(breakMinutes),
		}
	}
}

// WithStudyMinutes sets the initial study target, clamped like
// SetTotalStudyMinutes.
func WithStudyMinutes(minutes int) Option {
	return func(e *Engine) {
		e.plan.TotalStudyMinutes = clampStudyMinutes(minutes)
	}
}

// Engine owns the timer state, the session plan and the checklist.
type Engine struct {
	settings   Settings
	plan       Plan
	state      State
	generation uint64
	tasks      Checklist
	now        func() time.Time
}

// New builds an engine in its initial state.
func New(opts ...Option) *Engine {
	e := &Engine{
		settings: DefaultSettings(),
		plan:     Plan{TotalStudyMinutes: config.DefaultStudyMinutes},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.recomputeSessions()
	e.state = e.initialState()
	return e
}

func (e *Engine) initialState() State {
	return State{
		Mode:             models.ModePomodoro,
		RemainingSeconds: e.settings.PomodoroSeconds,
		CurrentSession:   1,
	}
}

// State returns the current timer state.
func (e *Engine) State() State { return e.state }

// Settings returns the active phase durations.
func (e *Engine) Settings() Settings { return e.settings }

// Plan returns the session plan.
func (e *Engine) Plan() Plan { return e.plan }

// Generation identifies the armed tick source. It changes whenever the timer
// is started, and whenever a running timer is stopped.
func (e *Engine) Generation() uint64 { return e.generation }

// Ticking reports whether a tick from source gen should be applied.
func (e *Engine) Ticking(gen uint64) bool {
	return e.state.Running && gen == e.generation
}

// Progress is the elapsed fraction of the current phase, in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.settings.Seconds(e.state.Mode)
	if total <= 0 {
		return 0
	}
	p := float64(total-e.state.RemainingSeconds) / float64(total)
	return math.Min(1, math.Max(0, p))
}

// PlanComplete reports whether the last Pomodoro of the plan has ended.
func (e *Engine) PlanComplete() bool {
	return e.state.Mode == models.ModePomodoro &&
		e.state.RemainingSeconds == 0 &&
		!e.state.Running &&
		e.state.CurrentSession >= e.plan.TotalSessions
}

// Start locks in the plan on first use and runs the countdown. Any previous
// tick source is cancelled; the returned generation identifies the new one.
func (e *Engine) Start() uint64 {
	if !e.state.TimeConfigured {
		e.state.TimeConfigured = true
	}
	if e.state.RemainingSeconds == 0 {
		e.state.RemainingSeconds = e.settings.Seconds(e.state.Mode)
	}
	e.state.Running = true
	e.generation++
	return e.generation
}

// Pause freezes the countdown.
func (e *Engine) Pause() {
	if !e.state.Running {
		return
	}
	e.stop()
}

// Tick advances a running countdown by one second and applies the phase-end
// transition when it reaches zero.
func (e *Engine) Tick() Event {
	if !e.state.Running {
		return Event{}
	}
	if e.state.RemainingSeconds > 0 {
		e.state.RemainingSeconds--
	}
	if e.state.RemainingSeconds > 0 {
		return Event{}
	}
	return e.finishPhase(false)
}

// Skip forces the phase-end transition. Skipped Pomodoros earn no credit.
func (e *Engine) Skip() Event {
	if e.PlanComplete() {
		return Event{}
	}
	return e.finishPhase(true)
}

func (e *Engine) finishPhase(skipped bool) Event {
	ev := Event{
		From:    e.state.Mode,
		Session: e.state.CurrentSession,
		At:      e.now(),
	}
	if e.state.Mode == models.ModeBreak {
		ev.Type = EventBreakCompleted
		if skipped {
			ev.Type = EventBreakSkipped
		}
		e.state.Mode = models.ModePomodoro
		e.state.RemainingSeconds = e.settings.PomodoroSeconds
		ev.To = models.ModePomodoro
		return ev
	}

	ev.Type = EventPomodoroSkipped
	if !skipped {
		ev.Type = EventPomodoroCompleted
		ev.CreditedMinutes = float64(e.settings.PomodoroSeconds) / 60
		e.state.AccumulatedStudyMinutes += ev.CreditedMinutes
	}
	if e.state.CurrentSession >= e.plan.TotalSessions {
		e.state.RemainingSeconds = 0
		if e.state.Running {
			e.stop()
		}
		ev.To = models.ModePomodoro
		ev.PlanComplete = true
		return ev
	}
	e.state.CurrentSession++
	e.state.Mode = models.ModeBreak
	e.state.RemainingSeconds = e.settings.BreakSeconds
	ev.To = models.ModeBreak
	return ev
}

// Reset discards all progress and returns to the initial state.
func (e *Engine) Reset() {
	e.state = e.initialState()
	e.generation++
}

// SwitchMode changes the displayed phase without touching the session count,
// study credit or running flag. An exhausted countdown is re-armed.
func (e *Engine) SwitchMode(target models.Mode) {
	if target != models.ModePomodoro && target != models.ModeBreak {
		return
	}
	e.state.Mode = target
	if e.state.RemainingSeconds == 0 {
		e.state.RemainingSeconds = e.settings.Seconds(target)
	}
}

// UpdateSettings sets the phase durations in minutes, clamped to
// [1, MaxPhaseMinutes].
func (e *Engine) UpdateSettings(pomodoroMinutes, breakMinutes int) {
	e.settings = Settings{
		PomodoroSeconds: minutesToSeconds(pomodoroMinutes),
		BreakSeconds:    minutesToSeconds(breakMinutes),
	}
	e.recomputeSessions()
}

// SaveSettings applies the current durations: the timer stops and the current
// phase is re-armed at its full length.
func (e *Engine) SaveSettings() {
	e.state.RemainingSeconds = e.settings.Seconds(e.state.Mode)
	e.stop()
}

// SetTotalStudyMinutes clamps the study target to [1, 480] minutes and
// recomputes the session count. The recount also runs once the plan is
// locked; see TimeConfigured.
func (e *Engine) SetTotalStudyMinutes(minutes int) {
	e.plan.TotalStudyMinutes = clampStudyMinutes(minutes)
	e.recomputeSessions()
}

func (e *Engine) recomputeSessions() {
	perSession := float64(e.settings.PomodoroSeconds) / 60
	e.plan.TotalSessions = int(math.Floor(float64(e.plan.TotalStudyMinutes) / perSession))
}

func (e *Engine) stop() {
	e.state.Running = false
	e.generation++
}

func clampStudyMinutes(minutes int) int {
	return util.Clamp(minutes, config.MinStudyMinutes, config.MaxStudyMinutes)
}

// LoadTasks replaces the active checklist with view.
func (e *Engine) LoadTasks(view iter.Seq[models.Task]) {
	e.tasks.Load(view)
}

// RestoreCompleted seeds the completed list, e.g. after a restart.
func (e *Engine) RestoreCompleted(completed []models.CompletedTask) {
	e.tasks.Restore(completed)
}

// CompleteTask checks off an active task, stamping it with the current time.
// It reports false when id is not in the active list.
func (e *Engine) CompleteTask(id string) (models.CompletedTask, bool) {
	return e.tasks.Complete(id, e.now())
}

// ActiveTasks returns the tasks still to do.
func (e *Engine) ActiveTasks() []models.Task { return e.tasks.Active() }

// CompletedTasks returns the checked-off tasks in completion order.
func (e *Engine) CompletedTasks() []models.CompletedTask { return e.tasks.Completed() }
