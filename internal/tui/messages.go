package tui

import "github.com/Veraticus/paydirt/internal/model"

// turnResultMsg delivers a completed workflow turn back to the UI loop.
type turnResultMsg struct {
	reply   string
	session *model.Session
}

// turnErrMsg delivers a failed turn.
type turnErrMsg struct {
	err error
}
