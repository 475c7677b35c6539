package workflow

import (
	"context"
	"sync"

	"github.com/Veraticus/paydirt/internal/model"
)

// mockExtractor returns a canned roster or error and records how many times
// it was invoked.
type mockExtractor struct {
	mu      sync.Mutex
	roster  model.Roster
	err     error
	calls   int
	lastDoc model.Document
}

func (m *mockExtractor) Extract(_ context.Context, doc model.Document) (model.Roster, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastDoc = doc
	if m.err != nil {
		return nil, m.err
	}
	return m.roster.Clone(), nil
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockResponder echoes a fixed reply, or fails, and captures the system
// prompts it was given.
type mockResponder struct {
	mu      sync.Mutex
	reply   string
	err     error
	systems []string
}

func (m *mockResponder) Respond(_ context.Context, system string, _ []model.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.systems = append(m.systems, system)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}
