package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTimer())
	b.WriteString("\n\n")
	if m.inputMode != inputNone {
		b.WriteString(m.renderInput())
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return CurrentTheme.Base.Render(b.String())
}

func (m DashboardModel) renderHeader() string {
	title := CurrentTheme.Header.Render("STUDYCLOCK")
	date := CurrentTheme.Dim.Render(m.today + "  v" + versionLabel())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date)
}

func phaseStyle(mode models.Mode) lipgloss.Style {
	if mode == models.ModeBreak {
		return CurrentTheme.Break
	}
	return CurrentTheme.Pomodoro
}

func (m DashboardModel) renderTimer() string {
	st := m.engine.State()
	plan := m.engine.Plan()

	status := "Paused"
	switch {
	case st.Running:
		status = "Running"
	case m.engine.PlanComplete():
		status = "Plan complete"
	case !st.TimeConfigured:
		status = "Ready"
	}

	phase := phaseStyle(st.Mode).Render(strings.ToUpper(st.Mode.Label()))
	clock := CurrentTheme.Clock.Render(FormatTimeRemaining(st.RemainingSeconds))
	line := lipgloss.JoinHorizontal(lipgloss.Center, phase, " ", clock, " ", CurrentTheme.Dim.Render(status))

	bar := m.progress.ViewAs(m.engine.Progress())

	studied := fmt.Sprintf("Studied %s of %s",
		FormatStudyMinutes(st.AccumulatedStudyMinutes),
		FormatStudyMinutes(float64(plan.TotalStudyMinutes)))
	info := CurrentTheme.Highlight.Render(FormatSessionCount(st.CurrentSession, plan.TotalSessions)) +
		CurrentTheme.Dim.Render("  |  ") + studied
	if st.TimeConfigured {
		info += CurrentTheme.Dim.Render("  (plan locked)")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, line, bar, info))
}

func (m DashboardModel) renderInput() string {
	switch m.inputMode {
	case inputSettings:
		pomLabel, brkLabel := "Pomodoro minutes", "Break minutes"
		if m.settingsFocus == 0 {
			pomLabel = CurrentTheme.Focused.Render(pomLabel)
		} else {
			brkLabel = CurrentTheme.Focused.Render(brkLabel)
		}
		body := fmt.Sprintf("%s %s\n%s %s\n%s",
			pomLabel, m.pomodoroInput.View(),
			brkLabel, m.breakInput.View(),
			CurrentTheme.Dim.Render("[tab] switch  [enter] save  [esc] cancel"))
		return CurrentTheme.Input.Render(body)
	case inputStudyMinutes:
		body := fmt.Sprintf("Study minutes (%d-%d) %s\n%s",
			config.MinStudyMinutes, config.MaxStudyMinutes, m.studyInput.View(),
			CurrentTheme.Dim.Render("[enter] save  [esc] cancel"))
		return CurrentTheme.Input.Render(body)
	case inputTask:
		return CurrentTheme.Input.Render(m.taskInput.View())
	}
	return ""
}

func (m DashboardModel) titleWidth() int {
	if m.width <= 0 {
		return config.TargetTitleWidth
	}
	return min(config.TargetTitleWidth, m.width-12)
}

func (m DashboardModel) renderTasks() string {
	active := m.engine.ActiveTasks()
	completed := m.engine.CompletedTasks()
	width := m.titleWidth()

	var b strings.Builder
	header := fmt.Sprintf("Tasks (%s)", FormatTaskCount(len(completed), len(active)+len(completed)))
	b.WriteString(CurrentTheme.Header.Render(header))
	b.WriteString("\n")
	if len(active) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  Nothing left for today. Press [a] to add a task."))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= config.MaxVisibleTasks {
		start = m.cursor - config.MaxVisibleTasks + 1
	}
	end := min(len(active), start+config.MaxVisibleTasks)
	for i := start; i < end; i++ {
		title := truncateTitle(active[i].Title, width)
		if i == m.cursor {
			b.WriteString(CurrentTheme.Focused.Render("> [ ] " + title))
		} else {
			b.WriteString(CurrentTheme.Task.Render("  [ ] " + title))
		}
		b.WriteString("\n")
	}
	if hidden := len(active) - end; hidden > 0 {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  ... %d more", hidden)))
		b.WriteString("\n")
	}

	// Most recent completions first
	shown := 0
	for i := len(completed) - 1; i >= 0 && shown < config.MaxVisibleCompleted; i-- {
		title := truncateTitle(completed[i].Title, width)
		b.WriteString(CurrentTheme.CompletedTask.Render("  [x] " + title))
		b.WriteString("\n")
		shown++
	}
	return b.String()
}

func (m DashboardModel) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, CurrentTheme.Error.Render("Error: "+m.err.Error()))
	} else if m.Message != "" {
		lines = append(lines, CurrentTheme.Highlight.Render(m.Message))
	}
	lines = append(lines, CurrentTheme.Dim.Render(m.keys.Help()))
	return strings.Join(lines, "\n")
}
