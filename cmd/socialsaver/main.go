// Command socialsaver is the Social Saver dashboard.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/violadsouza12/Social/internal/config"
	"github.com/violadsouza12/Social/internal/logging"
	"github.com/violadsouza12/Social/internal/picker"
	"github.com/violadsouza12/Social/internal/store"
	"github.com/violadsouza12/Social/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogDir(), cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	q, err := cfg.InitialQuery()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Seed 0 lets the picker seed itself from the clock
	var src picker.Source
	if cfg.Picker.Seed != 0 {
		src = picker.NewSeeded(cfg.Picker.Seed)
	}

	dbPath := cfg.Data.DBPath
	app := ui.NewApp(ui.AppConfig{
		LoadItems: func() tea.Cmd {
			return func() tea.Msg {
				items, err := store.Load(dbPath)
				return ui.ItemsLoaded{Items: items, Err: err}
			}
		},
		Query:  q,
		Random: src,
	})

	logging.Info("Dashboard starting", "db", dbPath, "sort", q.Sort.String())

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("Program exited with error", "error", err)
		log.Printf("Error running program: %v", err)
	}
}
