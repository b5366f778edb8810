package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if prefs != DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", prefs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Preferences{PomodoroMinutes: 50, BreakMinutes: 10, StudyMinutes: 200, Theme: "dracula"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(raw), "pomodoro_minutes: 50") {
		t.Fatalf("expected snake_case yaml keys, got:\n%s", raw)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "pomodoro_minutes: -3\nbreak_minutes: 0\nstudy_minutes: 9000\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defaults := DefaultPreferences()
	if prefs.PomodoroMinutes != defaults.PomodoroMinutes || prefs.BreakMinutes != defaults.BreakMinutes {
		t.Fatalf("expected invalid durations ignored, got %+v", prefs)
	}
	if prefs.StudyMinutes != 480 {
		t.Fatalf("expected study minutes clamped to 480, got %d", prefs.StudyMinutes)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("pomodoro_minutes: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	prefs, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if prefs != DefaultPreferences() {
		t.Fatalf("expected defaults alongside error, got %+v", prefs)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := DefaultPath("studyclock")
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if filepath.Base(path) != "settings.yaml" || filepath.Base(filepath.Dir(path)) != "studyclock" {
		t.Fatalf("unexpected path %q", path)
	}
}
