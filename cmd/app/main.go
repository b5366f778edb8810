package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/studyclock/internal/config"
	"github.com/akyairhashvil/studyclock/internal/database"
	"github.com/akyairhashvil/studyclock/internal/pomodoro"
	"github.com/akyairhashvil/studyclock/internal/storage"
	"github.com/akyairhashvil/studyclock/internal/tui"
	"github.com/akyairhashvil/studyclock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), os.Args[1:], os.Stdout, interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, interactive bool) error {
	// 1. Initialize Database
	dataDir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	db, err := database.Open(ctx, util.DatabasePath(config.AppName, config.DBPathEnv, config.DBFileName))
	if err != nil {
		return err
	}
	defer func() {
		util.LogError("close database", db.Close())
	}()

	today := time.Now().Format(config.DayLayout)

	// 2. One-shot commands
	if len(args) > 0 {
		switch args[0] {
		case "report":
			date, err := dateArg(args[1:], today)
			if err != nil {
				return err
			}
			path, err := tui.GenerateDayReport(ctx, db, date, util.ReportsDir(config.AppName))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "PDF Report generated: %s\n", path)
			return nil
		case "summary":
			date, err := dateArg(args[1:], today)
			if err != nil {
				return err
			}
			return writeSummary(ctx, db, date, out)
		case "version":
			fmt.Fprintf(out, "%s %s\n", config.AppName, tui.AppVersion)
			return nil
		default:
			return fmt.Errorf("unknown command %q (expected report, summary or version)", args[0])
		}
	}

	if !interactive {
		return writeSummary(ctx, db, today, out)
	}

	// 3. Preferences and timer
	prefsPath, err := storage.DefaultPath(config.AppName)
	if err != nil {
		return err
	}
	prefs, err := storage.Load(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring preferences file: %v\n", err)
	}
	engine := pomodoro.New(
		pomodoro.WithPhaseMinutes(prefs.PomodoroMinutes, prefs.BreakMinutes),
		pomodoro.WithStudyMinutes(prefs.StudyMinutes),
	)

	// Keep log output off the terminal while the TUI owns it
	logFile, err := tea.LogToFile(filepath.Join(dataDir, config.LogFileName), config.AppName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	// 4. Start Program
	model := tui.NewMainModel(ctx, db, engine, tui.Options{
		Preferences:     prefs,
		PreferencesPath: prefsPath,
		ReportsDir:      util.ReportsDir(config.AppName),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// dateArg returns the optional day argument, defaulting to today.
func dateArg(args []string, today string) (string, error) {
	if len(args) == 0 {
		return today, nil
	}
	if _, err := time.Parse(config.DayLayout, args[0]); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}
	return args[0], nil
}
