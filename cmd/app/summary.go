package main

import (
	"context"
	"fmt"
	"io"

	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/akyairhashvil/studyclock/internal/tui"
)

type summarySource interface {
	GetDaySummary(ctx context.Context, date string) (models.DaySummary, error)
	GetTasksForDay(ctx context.Context, date string) ([]models.Task, error)
}

// writeSummary prints a plain-text day summary for non-interactive output.
func writeSummary(ctx context.Context, src summarySource, date string, out io.Writer) error {
	sum, err := src.GetDaySummary(ctx, date)
	if err != nil {
		return err
	}
	open, err := src.GetTasksForDay(ctx, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Study summary for %s\n", date)
	fmt.Fprintf(out, "  Study time: %s\n", tui.FormatStudyMinutes(sum.StudyMinutes))
	fmt.Fprintf(out, "  Pomodoros:  %d finished, %d skipped\n", sum.PomodorosFinished, sum.PomodorosSkipped)
	fmt.Fprintf(out, "  Breaks:     %d\n", sum.BreaksTaken)
	fmt.Fprintf(out, "  Tasks:      %s\n", tui.FormatTaskCount(sum.TasksCompleted, sum.TasksCompleted+sum.TasksOpen))
	for _, t := range open {
		fmt.Fprintf(out, "    [ ] %s\n", t.Title)
	}
	return nil
}
