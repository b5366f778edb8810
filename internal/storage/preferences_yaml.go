package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/util"
	"gopkg.in/yaml.v3"
)

// Preferences are the user-editable timer defaults.
type Preferences struct {
	PomodoroMinutes int
	BreakMinutes    int
	StudyMinutes    int
	Theme           string
}

// DefaultPreferences returns the built-in defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		PomodoroMinutes: config.DefaultPomodoroMinutes,
		BreakMinutes:    config.DefaultBreakMinutes,
		StudyMinutes:    config.DefaultStudyMinutes,
		Theme:           "default",
	}
}

type yamlPreferences struct {
	PomodoroMinutes int    `yaml:"pomodoro_minutes"`
	BreakMinutes    int    `yaml:"break_minutes"`
	StudyMinutes    int    `yaml:"study_minutes"`
	Theme           string `yaml:"theme,omitempty"`
}

// DefaultPath resolves the preferences file inside the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, config.SettingsFileName), nil
}

// Load reads preferences from path.
// If the file does not exist, default preferences are returned.
func Load(path string) (Preferences, error) {
	prefs := DefaultPreferences()
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read preferences file: %w", err)
	}

	var fileData yamlPreferences
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return prefs, fmt.Errorf("parse preferences yaml: %w", err)
	}

	applyYamlPreferences(&prefs, fileData)
	return prefs, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlPreferences{
		PomodoroMinutes: prefs.PomodoroMinutes,
		BreakMinutes:    prefs.BreakMinutes,
		StudyMinutes:    prefs.StudyMinutes,
		Theme:           prefs.Theme,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}

func applyYamlPreferences(prefs *Preferences, fileData yamlPreferences) {
	if fileData.PomodoroMinutes > 0 {
		prefs.PomodoroMinutes = fileData.PomodoroMinutes
	}
	if fileData.BreakMinutes > 0 {
		prefs.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.StudyMinutes != 0 {
		prefs.StudyMinutes = util.Clamp(fileData.StudyMinutes, config.MinStudyMinutes, config.MaxStudyMinutes)
	}
	if fileData.Theme != "" {
		prefs.Theme = fileData.Theme
	}
}
