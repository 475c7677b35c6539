package model

import "time"

// Stage identifies where a session sits in the payroll workflow.
type Stage string

// Workflow stages.
const (
	StageInit                 Stage = "INIT"
	StageAwaitingExtraction   Stage = "AWAITING_EXTRACTION"
	StageReadyForMerge        Stage = "READY_FOR_MERGE"
	StageAwaitingConfirmation Stage = "AWAITING_CONFIRMATION"
	StagePayrollGenerated     Stage = "PAYROLL_GENERATED"
	StageIdle                 Stage = "IDLE"
)

// MessageRole identifies the author of a transcript entry.
type MessageRole string

// Message roles.
const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in a session's conversation transcript.
type Message struct {
	At      time.Time   `json:"at"`
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Document holds a transient uploaded timesheet document awaiting extraction.
type Document struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// Session is the long-lived workflow aggregate. It is a flat structure so it
// can be serialized between turns and resumed from storage.
type Session struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ID    string `json:"id"`
	Stage Stage  `json:"stage"`

	// Existing is the authoritative baseline roster from the prior pay
	// period. Updates holds freshly extracted, unconfirmed records.
	// MergedPending is the merge result awaiting user confirmation.
	Existing      Roster `json:"existing"`
	Updates       Roster `json:"updates"`
	MergedPending Roster `json:"merged_pending"`

	Messages []Message      `json:"messages"`
	Document *Document      `json:"document,omitempty"`
	Report   *PayrollReport `json:"report,omitempty"`

	DocumentPending  bool `json:"document_pending"`
	Confirmed        bool `json:"confirmed"`
	PayrollTriggered bool `json:"payroll_triggered"`
}

// NewSession creates an empty session in the initial stage.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Stage:     StageInit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append records a transcript entry and bumps the session timestamp.
func (s *Session) Append(role MessageRole, content string) {
	now := time.Now().UTC()
	s.Messages = append(s.Messages, Message{At: now, Role: role, Content: content})
	s.UpdatedAt = now
}

// LastUserMessage returns the content of the most recent user turn.
func (s *Session) LastUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// RecentMessages returns up to n of the newest transcript entries.
func (s *Session) RecentMessages(n int) []Message {
	if n <= 0 || len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
