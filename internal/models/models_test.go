package models

import "testing"

func TestModeConstants(t *testing.T) {
	if ModePomodoro != "pomodoro" {
		t.Fatalf("ModePomodoro = %q", ModePomodoro)
	}
	if ModeBreak != "break" {
		t.Fatalf("ModeBreak = %q", ModeBreak)
	}
}

func TestModeOther(t *testing.T) {
	if ModePomodoro.Other() != ModeBreak {
		t.Fatalf("expected pomodoro to flip to break")
	}
	if ModeBreak.Other() != ModePomodoro {
		t.Fatalf("expected break to flip to pomodoro")
	}
}

func TestModeLabel(t *testing.T) {
	if got := ModePomodoro.Label(); got != "Pomodoro" {
		t.Fatalf("ModePomodoro.Label() = %q", got)
	}
	if got := ModeBreak.Label(); got != "Break" {
		t.Fatalf("ModeBreak.Label() = %q", got)
	}
}

func TestCompletedTaskZeroValues(t *testing.T) {
	var c CompletedTask
	if c.ID != "" || c.Title != "" {
		t.Fatalf("expected empty embedded task")
	}
	if !c.CompletedAt.IsZero() {
		t.Fatalf("expected zero completion time")
	}
}
