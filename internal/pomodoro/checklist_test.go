package pomodoro

import (
	"slices"
	"testing"
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/akyairhashvil/studyclock/internal/testutil"
)

func sampleTasks() []models.Task {
	return []models.Task{
		testutil.NewTask().WithID("t1").WithTitle("Read chapter 4").WithDate("2026-03-02").Build(),
		testutil.NewTask().WithID("t2").WithTitle("Flashcards").WithDate("2026-03-01").Build(),
		testutil.NewTask().WithID("t3").WithTitle("Essay outline").WithDate("2026-03-02").Build(),
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTasksForTodayFilters(t *testing.T) {
	all := sampleTasks()
	got := ids(slices.Collect(TasksForToday(all, "2026-03-02")))
	want := []string{"t1", "t3"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTasksForTodayIsRestartableAndReadOnly(t *testing.T) {
	all := sampleTasks()
	view := TasksForToday(all, "2026-03-02")
	first := slices.Collect(view)
	second := slices.Collect(view)
	if !slices.Equal(ids(first), ids(second)) {
		t.Fatalf("expected identical passes, got %v and %v", ids(first), ids(second))
	}
	if len(all) != 3 || all[1].ID != "t2" {
		t.Fatalf("source list must not change: %v", ids(all))
	}
}

func TestTasksForTodayStopsEarly(t *testing.T) {
	seen := 0
	for range TasksForToday(sampleTasks(), "2026-03-02") {
		seen++
		break
	}
	if seen != 1 {
		t.Fatalf("expected early stop after 1, got %d", seen)
	}
}

func TestCompleteTaskMovesOnce(t *testing.T) {
	e := newTestEngine(t)
	e.LoadTasks(TasksForToday(sampleTasks(), "2026-03-02"))

	done, ok := e.CompleteTask("t1")
	if !ok {
		t.Fatalf("expected t1 to complete")
	}
	if !done.CompletedAt.Equal(fixedNow) {
		t.Fatalf("expected completion stamp %v, got %v", fixedNow, done.CompletedAt)
	}
	if got := ids(e.ActiveTasks()); !slices.Equal(got, []string{"t3"}) {
		t.Fatalf("expected only t3 active, got %v", got)
	}
	if len(e.CompletedTasks()) != 1 {
		t.Fatalf("expected 1 completed task, got %d", len(e.CompletedTasks()))
	}

	if _, ok := e.CompleteTask("t1"); ok {
		t.Fatalf("second completion must be a no-op")
	}
	if len(e.CompletedTasks()) != 1 {
		t.Fatalf("completed list grew on repeat completion")
	}
}

func TestCompleteUnknownTaskIsNoop(t *testing.T) {
	e := newTestEngine(t)
	e.LoadTasks(TasksForToday(sampleTasks(), "2026-03-02"))
	if _, ok := e.CompleteTask("t2"); ok {
		t.Fatalf("task from another day is not active")
	}
	if _, ok := e.CompleteTask("missing"); ok {
		t.Fatalf("unknown id must be a no-op")
	}
	if len(e.ActiveTasks()) != 2 {
		t.Fatalf("active list changed")
	}
}

func TestReloadKeepsCompletedTasksOut(t *testing.T) {
	e := newTestEngine(t)
	all := sampleTasks()
	e.LoadTasks(TasksForToday(all, "2026-03-02"))
	e.CompleteTask("t3")
	e.LoadTasks(TasksForToday(all, "2026-03-02"))
	if got := ids(e.ActiveTasks()); !slices.Equal(got, []string{"t1"}) {
		t.Fatalf("completed task reappeared: %v", got)
	}
}

func TestRestoreCompleted(t *testing.T) {
	var c Checklist
	c.Load(TasksForToday(sampleTasks(), "2026-03-02"))
	at := fixedNow.Add(-time.Hour)
	c.Restore([]models.CompletedTask{{Task: models.Task{ID: "t1", Date: "2026-03-02"}, CompletedAt: at}})
	c.Restore([]models.CompletedTask{{Task: models.Task{ID: "t1", Date: "2026-03-02"}, CompletedAt: at}})
	if got := ids(c.Active()); !slices.Equal(got, []string{"t3"}) {
		t.Fatalf("expected restored task removed from active, got %v", got)
	}
	if len(c.Completed()) != 1 {
		t.Fatalf("expected restore to be idempotent, got %d", len(c.Completed()))
	}
}

func TestResetLeavesChecklistAlone(t *testing.T) {
	e := newTestEngine(t)
	e.LoadTasks(TasksForToday(sampleTasks(), "2026-03-02"))
	e.CompleteTask("t1")
	e.Reset()
	if len(e.ActiveTasks()) != 1 || len(e.CompletedTasks()) != 1 {
		t.Fatalf("reset must not touch the checklist")
	}
}
