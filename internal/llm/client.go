// Package llm provides the language-model collaborators: vision-capable
// document extraction and conversational response generation.
package llm

import (
	"context"

	"github.com/Veraticus/paydirt/internal/model"
)

// Client defines the interface for LLM providers.
type Client interface {
	// ExtractRecords sends a document to a vision-capable model and returns
	// the employee records it found. Results are best effort: the response
	// may be empty or partial, and the caller must tolerate both.
	ExtractRecords(ctx context.Context, prompt string, doc model.Document) (ExtractionResponse, error)

	// Respond generates free-form conversational text from a system
	// instruction and the recent conversation history. It has no authority
	// to mutate workflow state.
	Respond(ctx context.Context, system string, history []model.Message) (string, error)
}

// ExtractionResponse contains the model's document-extraction result.
type ExtractionResponse struct {
	Employees model.Roster
}

// Config holds provider selection and connection settings for LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
