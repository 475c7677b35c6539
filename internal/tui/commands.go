package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/paydirt/internal/workflow"
)

// processTurn runs one workflow turn off the UI goroutine.
func processTurn(engine *workflow.Engine, sessionID string, turn workflow.Turn) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Process(context.Background(), sessionID, turn)
		if err != nil {
			return turnErrMsg{err: err}
		}
		return turnResultMsg{reply: result.Reply, session: result.Session}
	}
}
