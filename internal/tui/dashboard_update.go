package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/akyairhashvil/studyclock/internal/pomodoro"
	"github.com/akyairhashvil/studyclock/internal/storage"
	"github.com/akyairhashvil/studyclock/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errInvalidMinutes = errors.New("enter a whole number of minutes, at least 1")

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := config.ProgressWidth
			if m.width < config.CompactModeThreshold {
				target = m.width / 2
			}
			m.progress.Width = max(config.MinProgressWidth, target)
		}
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.updateInput(msg)
		}
		// Clear transient messages on keypress
		m.err = nil
		m.Message = ""
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}

	if in := m.activeInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick applies one second of countdown. Ticks from a cancelled source
// are dropped without rescheduling, so at most one tick chain stays alive.
func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	if !m.engine.Ticking(msg.Gen) {
		return m, nil
	}
	if ev := m.engine.Tick(); !ev.IsZero() {
		m.recordEvent(ev)
	}
	if m.engine.Ticking(msg.Gen) {
		return m, tickCmd(msg.Gen)
	}
	return m, nil
}

// recordEvent writes a finished or skipped phase to the study log.
func (m *DashboardModel) recordEvent(ev pomodoro.Event) {
	session := models.StudySession{
		Date:            m.today,
		SessionNumber:   ev.Session,
		Mode:            ev.From,
		CreditedMinutes: ev.CreditedMinutes,
		Skipped:         ev.Skipped(),
		EndedAt:         ev.At,
	}
	if _, err := m.db.RecordSession(m.ctx, session); err != nil {
		util.LogError("record study session", err)
		m.err = err
	}
	util.LogEvent("timer", "%s session=%d credited=%.1f", ev.Type, ev.Session, ev.CreditedMinutes)
	m.Message = eventMessage(ev)
}

func eventMessage(ev pomodoro.Event) string {
	switch {
	case ev.PlanComplete:
		return "Study plan complete. Well done!"
	case ev.Type == pomodoro.EventPomodoroCompleted:
		return fmt.Sprintf("Pomodoro %d done. Time for a break.", ev.Session)
	case ev.Type == pomodoro.EventPomodoroSkipped:
		return fmt.Sprintf("Pomodoro %d skipped, no study time credited.", ev.Session)
	case ev.Type == pomodoro.EventBreakSkipped:
		return "Break skipped."
	case ev.Type == pomodoro.EventBreakCompleted:
		return "Break over. Back to work."
	}
	return ""
}

// --- Key handlers ---

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

func handleStartPause(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.engine.State().Running {
		m.engine.Pause()
		m.Message = "Paused"
		return m, nil, true
	}
	gen := m.engine.Start()
	return m, tickCmd(gen), true
}

func handleSkip(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if ev := m.engine.Skip(); !ev.IsZero() {
		m.recordEvent(ev)
	}
	return m, nil, true
}

func handleReset(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.engine.Reset()
	m.Message = "Timer reset"
	return m, nil, true
}

func handleSwitchMode(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.engine.SwitchMode(m.engine.State().Mode.Other())
	return m, nil, true
}

func handleEditSettings(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	s := m.engine.Settings()
	m.pomodoroInput.SetValue(strconv.Itoa(s.PomodoroSeconds / 60))
	m.breakInput.SetValue(strconv.Itoa(s.BreakSeconds / 60))
	m.inputMode = inputSettings
	m.settingsFocus = 0
	m.breakInput.Blur()
	cmd := m.pomodoroInput.Focus()
	return m, cmd, true
}

func handleEditStudyTime(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.studyInput.SetValue(strconv.Itoa(m.engine.Plan().TotalStudyMinutes))
	m.inputMode = inputStudyMinutes
	cmd := m.studyInput.Focus()
	return m, cmd, true
}

func handleAddTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.taskInput.Reset()
	m.inputMode = inputTask
	cmd := m.taskInput.Focus()
	return m, cmd, true
}

func handleCompleteTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	done, ok := m.engine.CompleteTask(task.ID)
	if !ok {
		return m, nil, true
	}
	if _, err := m.db.CompleteTask(m.ctx, done.ID, done.CompletedAt); err != nil {
		util.LogError("complete task", err)
		m.err = err
	}
	m.clampCursor()
	m.Message = "Completed: " + truncateTitle(done.Title, config.TargetTitleWidth)
	return m, nil, true
}

func handleDeleteTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	if err := m.db.DeleteTask(m.ctx, task.ID); err != nil {
		util.LogError("delete task", err)
		m.err = err
		return m, nil, true
	}
	m.refreshTasks()
	m.Message = "Deleted: " + truncateTitle(task.Title, config.TargetTitleWidth)
	return m, nil, true
}

func handleCursorUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
	}
	return m, nil, true
}

func handleCursorDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.cursor < len(m.engine.ActiveTasks())-1 {
		m.cursor++
	}
	return m, nil, true
}

func handleCycleTheme(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	next := NextTheme(m.theme)
	SetTheme(next)
	m.theme = next
	if err := m.db.SetSetting(m.ctx, config.SettingTheme, next); err != nil {
		util.LogError("save theme", err)
		m.err = err
		return m, nil, true
	}
	m.Message = "Theme: " + CurrentTheme.Name
	return m, nil, true
}

func handleReport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	path, err := GenerateDayReport(m.ctx, m.db, m.today, m.opts.ReportsDir)
	if err != nil {
		util.LogError("generate report", err)
		m.err = err
		return m, nil, true
	}
	m.Message = "Report written to " + path
	return m, nil, true
}

// --- Input modes ---

func (m *DashboardModel) activeInput() *textinput.Model {
	switch m.inputMode {
	case inputSettings:
		if m.settingsFocus == 1 {
			return &m.breakInput
		}
		return &m.pomodoroInput
	case inputStudyMinutes:
		return &m.studyInput
	case inputTask:
		return &m.taskInput
	}
	return nil
}

func (m DashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyEnter:
		switch m.inputMode {
		case inputSettings:
			m.submitSettings()
		case inputStudyMinutes:
			m.submitStudyMinutes()
		case inputTask:
			m.submitTask()
		}
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if m.inputMode == inputSettings {
			m.activeInput().Blur()
			m.settingsFocus = 1 - m.settingsFocus
			cmd := m.activeInput().Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	in := m.activeInput()
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m *DashboardModel) closeInput() {
	m.pomodoroInput.Blur()
	m.breakInput.Blur()
	m.studyInput.Blur()
	m.taskInput.Blur()
	m.taskInput.Reset()
	m.inputMode = inputNone
	m.settingsFocus = 0
}

func (m *DashboardModel) submitSettings() {
	pom, err := parseMinutes(m.pomodoroInput.Value())
	if err != nil {
		m.err = fmt.Errorf("pomodoro length: %w", err)
		return
	}
	brk, err := parseMinutes(m.breakInput.Value())
	if err != nil {
		m.err = fmt.Errorf("break length: %w", err)
		return
	}
	m.closeInput()
	m.engine.UpdateSettings(pom, brk)
	m.engine.SaveSettings()
	m.prefs.PomodoroMinutes = pom
	m.prefs.BreakMinutes = brk
	m.savePreferences()
	m.Message = fmt.Sprintf("Settings saved: %dm focus, %dm break", pom, brk)
}

func (m *DashboardModel) submitStudyMinutes() {
	minutes, err := parseMinutes(m.studyInput.Value())
	if err != nil {
		m.err = fmt.Errorf("study time: %w", err)
		return
	}
	m.closeInput()
	m.engine.SetTotalStudyMinutes(minutes)
	plan := m.engine.Plan()
	m.prefs.StudyMinutes = plan.TotalStudyMinutes
	m.savePreferences()
	m.Message = fmt.Sprintf("Study plan: %d minutes, %d sessions", plan.TotalStudyMinutes, plan.TotalSessions)
}

func (m *DashboardModel) submitTask() {
	title := strings.TrimSpace(m.taskInput.Value())
	m.closeInput()
	if title == "" {
		return
	}
	if _, err := m.db.AddTask(m.ctx, title, m.today, ""); err != nil {
		util.LogError("add task", err)
		m.err = err
		return
	}
	m.refreshTasks()
}

func (m *DashboardModel) savePreferences() {
	if m.opts.PreferencesPath == "" {
		return
	}
	if err := storage.Save(m.opts.PreferencesPath, m.prefs); err != nil {
		util.LogError("save preferences", err)
		m.err = err
	}
}

func parseMinutes(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0, errInvalidMinutes
	}
	return n, nil
}
