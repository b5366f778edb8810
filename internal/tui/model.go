package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/pomodoro"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateInitializing SessionState = iota
	StateDashboard
)

// MainModel is the root bubbletea model. It asks for the day's study target
// once, then hands over to the dashboard.
type MainModel struct {
	state     SessionState
	textInput textinput.Model
	dashboard DashboardModel
	err       error
	width     int
	height    int
}

func NewMainModel(ctx context.Context, db Database, engine *pomodoro.Engine, opts Options) MainModel {
	m := MainModel{
		state:     StateInitializing,
		dashboard: NewDashboardModel(ctx, db, engine, opts),
	}
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", config.MinStudyMinutes, config.MaxStudyMinutes)
	ti.SetValue(strconv.Itoa(engine.Plan().TotalStudyMinutes))
	ti.Focus()
	ti.CharLimit = config.MaxMinutesInputLength
	ti.Width = 10
	m.textInput = ti
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		newDash, cmd := m.dashboard.Update(msg)
		m.dashboard = newDash.(DashboardModel)
		return m, cmd
	}

	switch m.state {
	case StateInitializing:
		return m.updateInitializing(msg)
	case StateDashboard:
		newDash, cmd := m.dashboard.Update(msg)
		m.dashboard = newDash.(DashboardModel)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) updateInitializing(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			minutes, err := strconv.Atoi(m.textInput.Value())
			if err != nil || minutes < config.MinStudyMinutes || minutes > config.MaxStudyMinutes {
				m.err = fmt.Errorf("please enter a number between %d and %d", config.MinStudyMinutes, config.MaxStudyMinutes)
				return m, nil
			}
			m.err = nil
			m.dashboard.engine.SetTotalStudyMinutes(minutes)
			m.dashboard.prefs.StudyMinutes = minutes
			m.dashboard.savePreferences()
			m.state = StateDashboard
			return m, m.dashboard.Init()
		case tea.KeyEsc:
			m.state = StateDashboard
			return m, m.dashboard.Init()
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	switch m.state {
	case StateInitializing:
		view := fmt.Sprintf(
			"\n  %s\n\n  %s\n\n  %s\n",
			CurrentTheme.Header.Render("How long will you study today?"),
			fmt.Sprintf("Minutes (%d-%d), [enter] to confirm, [esc] to keep the default:", config.MinStudyMinutes, config.MaxStudyMinutes),
			m.textInput.View(),
		)
		if m.err != nil {
			view += "\n  " + CurrentTheme.Error.Render(m.err.Error()) + "\n"
		}
		return view
	case StateDashboard:
		return m.dashboard.View()
	}
	return ""
}
