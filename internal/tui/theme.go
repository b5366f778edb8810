package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Pomodoro      lipgloss.Style
	Break         lipgloss.Style
	Clock         lipgloss.Style
	Task          lipgloss.Style
	CompletedTask lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Error         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Pomodoro:      lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		Break:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 1),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Pomodoro:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Break:         lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
	"mono": {
		Name:          "Mono",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("245"),
		Header:        lipgloss.NewStyle().Bold(true),
		Pomodoro:      lipgloss.NewStyle().Bold(true),
		Break:         lipgloss.NewStyle().Italic(true),
		Clock:         lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Task:          lipgloss.NewStyle(),
		CompletedTask: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Reverse(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Highlight:     lipgloss.NewStyle().Underline(true),
		Error:         lipgloss.NewStyle().Bold(true).Underline(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

var currentThemeKey = "default"

// SetTheme activates the named theme. Unknown names are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = t
	currentThemeKey = name
	return true
}

// ThemeNames lists the registered theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the key following current in ThemeNames, wrapping around.
func NextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
