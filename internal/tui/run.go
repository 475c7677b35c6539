package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the chat TUI and blocks until the user quits.
func Run(cfg Config) error {
	if cfg.Engine == nil {
		return fmt.Errorf("tui requires a workflow engine")
	}
	if cfg.SessionID == "" {
		return fmt.Errorf("tui requires a session id")
	}

	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running chat ui: %w", err)
	}
	return nil
}
