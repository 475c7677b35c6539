package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/model"
)

// Extractor turns uploaded timesheet documents into candidate employee
// records using a vision-capable client. It owns the extraction prompt and
// filters out candidates that would fail validation downstream; extraction is
// best effort, so a bad record is dropped rather than failing the batch.
type Extractor struct {
	client Client
}

// NewExtractor creates a document extractor backed by the given client.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// Extract processes a document and returns the usable candidate records.
func (e *Extractor) Extract(ctx context.Context, doc model.Document) (model.Roster, error) {
	resp, err := e.client.ExtractRecords(ctx, extractionPrompt, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	usable := make(model.Roster, 0, len(resp.Employees))
	for _, emp := range resp.Employees {
		if err := emp.Validate(); err != nil {
			slog.Warn("Dropping unusable extracted record", "name", emp.Name, "error", err)
			continue
		}
		usable = append(usable, emp)
	}

	slog.Info("Document extraction complete",
		"extracted", len(resp.Employees),
		"usable", len(usable))

	return usable, nil
}
