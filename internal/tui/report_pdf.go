package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/studyclock/internal/models"
	"github.com/go-pdf/fpdf"
)

// ReportSource is the subset of the database a day report reads.
type ReportSource interface {
	GetDaySummary(ctx context.Context, date string) (models.DaySummary, error)
	GetSessionsForDay(ctx context.Context, date string) ([]models.StudySession, error)
	GetTasksForDay(ctx context.Context, date string) ([]models.Task, error)
	GetCompletedTasksForDay(ctx context.Context, date string) ([]models.CompletedTask, error)
}

// GenerateDayReport writes report_<date>.pdf into dir and returns its
// absolute path.
func GenerateDayReport(ctx context.Context, src ReportSource, date, dir string) (string, error) {
	summary, err := src.GetDaySummary(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load summary: %w", err)
	}
	sessions, err := src.GetSessionsForDay(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	open, err := src.GetTasksForDay(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load tasks: %w", err)
	}
	completed, err := src.GetCompletedTasksForDay(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load completed tasks: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Study Report: %s", date))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Study time: %s", FormatStudyMinutes(summary.StudyMinutes)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Pomodoros finished: %d   skipped: %d   breaks taken: %d",
		summary.PomodorosFinished, summary.PomodorosSkipped, summary.BreaksTaken))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks: %s", FormatTaskCount(summary.TasksCompleted, summary.TasksCompleted+summary.TasksOpen)))
	pdf.Ln(12)

	// Sessions
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Sessions")
	pdf.Ln(10)
	if len(sessions) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "  - No sessions recorded.")
		pdf.Ln(8)
	} else {
		pdf.SetFont("Arial", "B", 11)
		widths := []float64{20, 35, 30, 35, 40}
		for i, h := range []string{"#", "Phase", "Ended", "Credited", "Status"} {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 11)
		for _, s := range sessions {
			status := "completed"
			if s.Skipped {
				status = "skipped"
			}
			row := []string{
				fmt.Sprintf("%d", s.SessionNumber),
				s.Mode.Label(),
				s.EndedAt.Local().Format("15:04"),
				fmt.Sprintf("%.0f min", s.CreditedMinutes),
				status,
			}
			for i, cell := range row {
				pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	pdf.Ln(6)

	// Tasks
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Tasks")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	if len(open)+len(completed) == 0 {
		pdf.Cell(0, 8, "  - No tasks for this day.")
		pdf.Ln(8)
	}
	for _, t := range completed {
		pdf.MultiCell(0, 7, fmt.Sprintf("  [x] %s (%s)", t.Title, t.CompletedAt.Local().Format("15:04")), "", "", false)
	}
	for _, t := range open {
		pdf.MultiCell(0, 7, fmt.Sprintf("  [ ] %s", t.Title), "", "", false)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", date))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
