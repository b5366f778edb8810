package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("studyclock"); got != filepath.Join(base, "studyclock") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestDatabasePathOverride(t *testing.T) {
	t.Setenv("STUDYCLOCK_DB", "/tmp/custom.db")
	if got := DatabasePath("studyclock", "STUDYCLOCK_DB", "studyclock.db"); got != "/tmp/custom.db" {
		t.Fatalf("expected override, got %q", got)
	}
	t.Setenv("STUDYCLOCK_DB", "")
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	want := filepath.Join(base, "studyclock", "studyclock.db")
	if got := DatabasePath("studyclock", "STUDYCLOCK_DB", "studyclock.db"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := expandHome("$HOME/Docs"); got != home+"/Docs" {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got := expandHome("~/notes"); got != filepath.Join(home, "notes") {
		t.Fatalf("unexpected tilde expansion %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
