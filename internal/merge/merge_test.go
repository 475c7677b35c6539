package merge

import (
	"testing"

	"github.com/Veraticus/paydirt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing model.Roster
		updates  model.Roster
		want     model.Roster
	}{
		{
			name:     "empty updates returns existing unchanged",
			existing: model.Roster{{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60}},
			updates:  model.Roster{},
			want:     model.Roster{{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60}},
		},
		{
			name:     "empty existing returns updates unchanged",
			existing: model.Roster{},
			updates:  model.Roster{{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50}},
			want:     model.Roster{{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50}},
		},
		{
			name: "document hours supersede baseline, zero rate preserves stored rate",
			existing: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60.0},
			},
			updates: model.Roster{
				{Name: "John Doe", RegularHours: 42, OvertimeHours: 0, PayRate: 0},
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50.0},
			},
			want: model.Roster{
				{Name: "John Doe", RegularHours: 42, OvertimeHours: 0, PayRate: 60.0},
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50.0},
			},
		},
		{
			name: "positive update rate supersedes stored rate",
			existing: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 0, PayRate: 60},
			},
			updates: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 0, PayRate: 65},
			},
			want: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 0, PayRate: 65},
			},
		},
		{
			name: "partial document never drops baseline employees",
			existing: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 0, PayRate: 60},
				{Name: "Bob Johnson", RegularHours: 40, OvertimeHours: 0, PayRate: 22.5},
			},
			updates: model.Roster{
				{Name: "John Doe", RegularHours: 35, OvertimeHours: 0, PayRate: 0},
			},
			want: model.Roster{
				{Name: "John Doe", RegularHours: 35, OvertimeHours: 0, PayRate: 60},
				{Name: "Bob Johnson", RegularHours: 40, OvertimeHours: 0, PayRate: 22.5},
			},
		},
		{
			name: "duplicate names within one input resolve last-write-wins",
			existing: model.Roster{},
			updates: model.Roster{
				{Name: "Jane Smith", RegularHours: 10, OvertimeHours: 0, PayRate: 50},
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
			},
			want: model.Roster{
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.updates)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := model.Roster{{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60}}
	updates := model.Roster{{Name: "John Doe", RegularHours: 42, OvertimeHours: 0, PayRate: 0}}

	_ = Merge(existing, updates)

	assert.Equal(t, 40.0, existing[0].RegularHours)
	assert.Equal(t, 0.0, updates[0].PayRate)
}

func TestMergeCardinalityFloor(t *testing.T) {
	existing := model.Roster{
		{Name: "A", RegularHours: 1, PayRate: 10},
		{Name: "B", RegularHours: 2, PayRate: 20},
		{Name: "C", RegularHours: 3, PayRate: 30},
	}
	updates := model.Roster{
		{Name: "B", RegularHours: 9, PayRate: 0},
		{Name: "D", RegularHours: 4, PayRate: 40},
	}

	merged := Merge(existing, updates)

	// No attrition: everyone in the baseline survives, plus novel names.
	assert.GreaterOrEqual(t, len(merged), len(existing))
	assert.Len(t, merged, 4)
}

func TestSummarize(t *testing.T) {
	existing := model.Roster{
		{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60},
		{Name: "Bob Johnson", RegularHours: 40, OvertimeHours: 0, PayRate: 22.5},
	}
	updates := model.Roster{
		{Name: "John Doe", RegularHours: 42, OvertimeHours: 0, PayRate: 0},
		{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
	}

	summary := Summarize(existing, updates)

	assert.Equal(t, []string{"Jane Smith"}, summary.Added)
	assert.Equal(t, []string{"John Doe"}, summary.Updated)
	assert.Equal(t, []string{"Bob Johnson"}, summary.Carried)
	assert.Equal(t, []string{"John Doe"}, summary.RatePreserved)
	assert.Equal(t, 3, summary.Total())
}

func TestFormatSummary(t *testing.T) {
	existing := model.Roster{{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60}}
	updates := model.Roster{{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50}}

	merged := Merge(existing, updates)
	text := FormatSummary(merged, Summarize(existing, updates))

	require.Contains(t, text, "2 employees")
	assert.Contains(t, text, "• John Doe: 40h regular, 5h overtime @ $60.00/hr")
	assert.Contains(t, text, "• Jane Smith: 38.5h regular, 2.5h overtime @ $50.00/hr")
	assert.Contains(t, text, "New employees added: Jane Smith")
	assert.Contains(t, text, "Carried over unchanged: John Doe")
}
