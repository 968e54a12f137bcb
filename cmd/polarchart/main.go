package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gopolar/internal/applog"
	"gopolar/internal/config"
	"gopolar/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	applog.Init(applog.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg, os.Args[1])
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
