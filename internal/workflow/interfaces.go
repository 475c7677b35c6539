package workflow

import (
	"context"

	"github.com/Veraticus/paydirt/internal/model"
)

// Extractor defines the contract for turning an uploaded document into
// candidate employee records. Implementations are unreliable by contract:
// they may return nothing, partial records, or fail outright, and the
// workflow tolerates all three.
type Extractor interface {
	Extract(ctx context.Context, doc model.Document) (model.Roster, error)
}

// Responder defines the contract for rendering natural-language replies.
// A responder generates text only; it has no authority to mutate session
// state — every mutation happens through the structured transition rules.
type Responder interface {
	Respond(ctx context.Context, system string, history []model.Message) (string, error)
}
