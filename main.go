package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DannerDQ/task-tracker/internal/config"
	"github.com/DannerDQ/task-tracker/internal/task"
	"github.com/DannerDQ/task-tracker/internal/ui"
)

func main() {
	cfg, err := config.Load("task_tracker.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if os.Getenv("TASK_TRACKER_DEBUG") != "" {
		f, err := tea.LogToFile("task_tracker_debug.log", "debug")
		if err != nil {
			log.Fatalf("open debug log: %v", err)
		}
		defer f.Close()
	}

	store, err := task.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	tracker, err := task.NewTracker(store)
	if err != nil {
		// a corrupt tasks file is fatal here, loudly: the data is left on
		// disk untouched for the user to inspect or restore from a backup
		log.Fatalf("load tasks from %s: %v", store.Path(), err)
	}

	p := tea.NewProgram(ui.New(tracker, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run ui: %v", err)
	}
}
