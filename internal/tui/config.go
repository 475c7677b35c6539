package tui

import (
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/workflow"
)

// Config carries everything the chat TUI needs to run.
type Config struct {
	Engine    *workflow.Engine
	SessionID string
	// Document, when set, is submitted as the first turn so a user can
	// attach a timesheet straight from the command line.
	Document *model.Document
}
