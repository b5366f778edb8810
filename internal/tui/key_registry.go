package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press on the dashboard. It reports whether the
// key was consumed.
type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Priority    int
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// Help renders the bindings as "[key]description" pairs.
func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, "["+key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{"q", "ctrl+c"}, Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{"space", " "}, Handler: handleStartPause, Description: "start/pause", Priority: 90})
	r.Register(KeyBinding{Keys: []string{"s"}, Handler: handleSkip, Description: "skip", Priority: 80})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Description: "reset", Priority: 80})
	r.Register(KeyBinding{Keys: []string{"m"}, Handler: handleSwitchMode, Description: "mode", Priority: 70})
	r.Register(KeyBinding{Keys: []string{"e"}, Handler: handleEditSettings, Description: "settings", Priority: 60})
	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleEditStudyTime, Description: "study time", Priority: 60})
	r.Register(KeyBinding{Keys: []string{"a"}, Handler: handleAddTask, Description: "add task", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"x", "enter"}, Handler: handleCompleteTask, Description: "done", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"d"}, Handler: handleDeleteTask, Description: "delete", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleCursorUp, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleCursorDown, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"T"}, Handler: handleCycleTheme, Description: "theme", Priority: 30})
	r.Register(KeyBinding{Keys: []string{"R"}, Handler: handleReport, Description: "report", Priority: 30})
	return r
}
