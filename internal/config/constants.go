package config

import "time"

// Timer defaults.
const (
	DefaultPomodoroMinutes = 25
	DefaultBreakMinutes    = 5
	DefaultStudyMinutes    = 120
	TickInterval           = time.Second
)

// Normalization bounds.
const (
	MinPhaseSeconds = 60
	MaxPhaseMinutes = 24 * 60
	MinStudyMinutes = 1
	MaxStudyMinutes = 480
)

// Database/application settings.
const (
	AppName          = "studyclock"
	DBFileName       = "studyclock.db"
	LogFileName      = "studyclock.log"
	SettingsFileName = "settings.yaml"
	DBPathEnv        = "STUDYCLOCK_DB"
	DayLayout        = "2006-01-02"
)

// Settings table keys.
const (
	SettingTheme = "theme"
)
