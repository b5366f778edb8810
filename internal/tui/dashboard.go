package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/akyairhashvil/studyclock/internal/pomodoro"
	"github.com/akyairhashvil/studyclock/internal/storage"
	"github.com/akyairhashvil/studyclock/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input modes
const (
	inputNone = iota
	inputSettings
	inputStudyMinutes
	inputTask
)

// --- Messages ---

// TickMsg is one second of countdown. Gen is the generation of the tick
// source that produced it; ticks from any other generation are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}

// Options carries the runtime wiring of the dashboard.
type Options struct {
	Preferences     storage.Preferences
	PreferencesPath string
	ReportsDir      string
	Today           func() string
}

// --- Model ---
type DashboardModel struct {
	ctx      context.Context
	db       Database
	engine   *pomodoro.Engine
	keys     *HandlerRegistry
	prefs    storage.Preferences
	opts     Options
	today    string
	theme    string
	progress progress.Model

	inputMode     int
	settingsFocus int
	pomodoroInput textinput.Model
	breakInput    textinput.Model
	studyInput    textinput.Model
	taskInput     textinput.Model

	cursor        int
	err           error
	Message       string
	quitting      bool
	width, height int
}

func NewDashboardModel(ctx context.Context, db Database, engine *pomodoro.Engine, opts Options) DashboardModel {
	if opts.Today == nil {
		opts.Today = func() string { return time.Now().Format(config.DayLayout) }
	}

	pi := newMinutesInput("25")
	bi := newMinutesInput("5")
	si := newMinutesInput("120")
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = config.MaxTitleLength
	ti.Width = config.TargetTitleWidth

	m := DashboardModel{
		ctx:           ctx,
		db:            db,
		engine:        engine,
		keys:          defaultRegistry(),
		prefs:         opts.Preferences,
		opts:          opts,
		today:         opts.Today(),
		progress:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		pomodoroInput: pi,
		breakInput:    bi,
		studyInput:    si,
		taskInput:     ti,
	}
	m.progress.Width = config.ProgressWidth
	m.loadTheme()
	m.refreshTasks()
	return m
}

func newMinutesInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = config.MaxMinutesInputLength
	in.Width = 6
	return in
}

// loadTheme prefers the theme stored in the settings table over the
// preferences file.
func (m *DashboardModel) loadTheme() {
	name := m.prefs.Theme
	if stored, ok := m.db.GetSetting(m.ctx, config.SettingTheme); ok && stored != "" {
		name = stored
	}
	if !SetTheme(name) {
		name = "default"
		SetTheme(name)
	}
	m.theme = name
}

// refreshTasks reloads today's checklist from the task source. Completed
// tasks are restored first so they never reappear as active.
func (m *DashboardModel) refreshTasks() {
	completed, err := m.db.GetCompletedTasksForDay(m.ctx, m.today)
	if err != nil {
		util.LogError("load completed tasks", err)
		m.err = err
	}
	all, err := m.db.GetAllTasks(m.ctx)
	if err != nil {
		util.LogError("load tasks", err)
		m.err = err
		return
	}
	m.engine.RestoreCompleted(completed)
	m.engine.LoadTasks(pomodoro.TasksForToday(all, m.today))
	m.clampCursor()
}

func (m *DashboardModel) clampCursor() {
	n := len(m.engine.ActiveTasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, n-1)
}

func (m DashboardModel) selectedTask() (models.Task, bool) {
	active := m.engine.ActiveTasks()
	if m.cursor < 0 || m.cursor >= len(active) {
		return models.Task{}, false
	}
	return active[m.cursor], true
}

func (m DashboardModel) Init() tea.Cmd { return textinput.Blink }

// Engine exposes the timer driven by this dashboard.
func (m DashboardModel) Engine() *pomodoro.Engine { return m.engine }
