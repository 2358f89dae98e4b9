package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
	"github.com/atomicstack/outline-popup-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Keymap     map[string]string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store := hierarchy.NewStore()
	model := ui.NewModel(store, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Keymap)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
