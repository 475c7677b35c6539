package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	extraction ExtractionResponse
	err        error
}

func (s *stubClient) ExtractRecords(_ context.Context, _ string, _ model.Document) (ExtractionResponse, error) {
	return s.extraction, s.err
}

func (s *stubClient) Respond(_ context.Context, _ string, _ []model.Message) (string, error) {
	return "", nil
}

func TestExtractorFiltersUnusableRecords(t *testing.T) {
	client := &stubClient{
		extraction: ExtractionResponse{Employees: model.Roster{
			{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
			{Name: "Broken", RegularHours: -4, PayRate: 10},
			{Name: "John Doe", RegularHours: 42},
		}},
	}

	got, err := NewExtractor(client).Extract(context.Background(), model.Document{MIME: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, model.Roster{
		{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
		{Name: "John Doe", RegularHours: 42},
	}, got)
}

func TestExtractorPropagatesClientError(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}

	_, err := NewExtractor(client).Extract(context.Background(), model.Document{MIME: "image/png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic"} {
		t.Run(provider, func(t *testing.T) {
			_, err := NewClient(Config{Provider: provider})
			assert.ErrorIs(t, err, common.ErrMissingConfig)
		})
	}
}
