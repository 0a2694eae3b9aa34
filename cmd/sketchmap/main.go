package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sketchmap/internal/config"
	"sketchmap/internal/logging"
	"sketchmap/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg.Metrics(), logger, os.Args[1])
	} else {
		m = tui.New(cfg.Metrics(), logger)
	}
	logger.Info().Float64("handle_size", cfg.HandleSize).Float64("min_size", cfg.MinSize).Msg("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		closer.Close()
		log.Fatal(err)
	}
	logger.Info().Msg("bye")
}
