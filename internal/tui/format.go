package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining renders a countdown as MM:SS. Minutes are not wrapped
// at the hour so long phases stay readable.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatStudyMinutes renders credited study time, rounding to whole minutes.
func FormatStudyMinutes(minutes float64) string {
	if minutes < 0.5 {
		return "0m"
	}
	return FormatDuration(time.Duration(math.Round(minutes)) * time.Minute)
}

// FormatSessionCount formats the session progress for display.
func FormatSessionCount(current, total int) string {
	if total <= 0 {
		return "No sessions planned"
	}
	return fmt.Sprintf("Session %d/%d", min(current, total), total)
}

// FormatTaskCount formats checklist counts for display.
func FormatTaskCount(completed, total int) string {
	if total == 0 {
		return "No tasks"
	}
	return fmt.Sprintf("%d/%d tasks", completed, total)
}

func truncateTitle(title string, width int) string {
	width = max(config.MinTitleWidth, width)
	return ansi.Truncate(title, width, config.TruncationSuffix)
}
