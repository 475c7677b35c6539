package llm

import (
	"testing"

	"github.com/Veraticus/paydirt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain json untouched",
			content: `{"employees": []}`,
			want:    `{"employees": []}`,
		},
		{
			name:    "json fence stripped",
			content: "```json\n{\"employees\": []}\n```",
			want:    `{"employees": []}`,
		},
		{
			name:    "bare fence stripped",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  \n{\"a\": 1}\n  ",
			want:    `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}

func TestParseEmployeeList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.Roster
		wantErr bool
	}{
		{
			name:    "wrapped object",
			content: `{"employees": [{"name": "Jane Smith", "regular_hours": 38.5, "overtime_hours": 2.5, "pay_rate": 50}]}`,
			want:    model.Roster{{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50}},
		},
		{
			name:    "bare array",
			content: `[{"name": "John Doe", "regular_hours": 40}]`,
			want:    model.Roster{{Name: "John Doe", RegularHours: 40}},
		},
		{
			name:    "missing numeric fields default to zero",
			content: `{"employees": [{"name": "John Doe"}]}`,
			want:    model.Roster{{Name: "John Doe"}},
		},
		{
			name:    "legacy payrate key accepted",
			content: `{"employees": [{"name": "John Doe", "payrate": 60}]}`,
			want:    model.Roster{{Name: "John Doe", PayRate: 60}},
		},
		{
			name:    "nameless records dropped",
			content: `{"employees": [{"name": "", "regular_hours": 40}, {"name": "Jane Smith", "pay_rate": 50}]}`,
			want:    model.Roster{{Name: "Jane Smith", PayRate: 50}},
		},
		{
			name:    "fenced response",
			content: "```json\n{\"employees\": [{\"name\": \"Jane Smith\", \"pay_rate\": 50}]}\n```",
			want:    model.Roster{{Name: "Jane Smith", PayRate: 50}},
		},
		{
			name:    "empty list",
			content: `{"employees": []}`,
			want:    model.Roster{},
		},
		{
			name:    "prose is an error",
			content: `I could not find any employees in this document.`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEmployeeList(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
