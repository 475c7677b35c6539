package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/model"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Edit
		ok      bool
	}{
		{
			name:    "rate with dollar sign",
			message: "change John Doe's rate to $65",
			want:    Edit{Name: "John Doe", Field: EditPayRate, Value: 65},
			ok:      true,
		},
		{
			name:    "pay rate spelled out",
			message: "set Alice Brown's pay rate to 32.50",
			want:    Edit{Name: "Alice Brown", Field: EditPayRate, Value: 32.5},
			ok:      true,
		},
		{
			name:    "regular hours",
			message: "update Bob Johnson's regular hours to 38",
			want:    Edit{Name: "Bob Johnson", Field: EditRegularHours, Value: 38},
			ok:      true,
		},
		{
			name:    "overtime shorthand",
			message: "set John Doe's overtime to 5",
			want:    Edit{Name: "John Doe", Field: EditOvertimeHours, Value: 5},
			ok:      true,
		},
		{
			name:    "overtime hours with unit suffix",
			message: "Change John Doe's overtime hours to 5 hours",
			want:    Edit{Name: "John Doe", Field: EditOvertimeHours, Value: 5},
			ok:      true,
		},
		{
			name:    "bare hours maps to regular",
			message: "set Bob Johnson's hours to 40",
			want:    Edit{Name: "Bob Johnson", Field: EditRegularHours, Value: 40},
			ok:      true,
		},
		{
			name:    "per hour suffix",
			message: "set Alice Brown's rate to 31 per hour",
			want:    Edit{Name: "Alice Brown", Field: EditPayRate, Value: 31},
			ok:      true,
		},
		{
			name:    "polite prefix",
			message: "please change John Doe's rate to 70",
			want:    Edit{Name: "John Doe", Field: EditPayRate, Value: 70},
			ok:      true,
		},
		{
			name:    "no possessive",
			message: "set John Doe rate to 70",
			want:    Edit{Name: "John Doe", Field: EditPayRate, Value: 70},
			ok:      true,
		},

		{name: "plain question", message: "what is John's rate?", ok: false},
		{name: "confirmation", message: "looks good", ok: false},
		{name: "negative value", message: "set John Doe's rate to -5", ok: false},
		{name: "missing value", message: "change John Doe's rate to", ok: false},
		{name: "empty", message: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEdit(tt.message)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	roster := model.Roster{
		{Name: "John Doe", RegularHours: 40, PayRate: 60},
		{Name: "Bob Johnson", RegularHours: 40, PayRate: 22.5},
		{Name: "Alice Brown", RegularHours: 35, PayRate: 30},
	}

	t.Run("exact case-insensitive", func(t *testing.T) {
		got, err := ResolveName(roster, "john doe")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", got)
	})

	t.Run("typo within distance", func(t *testing.T) {
		got, err := ResolveName(roster, "Jhon Doe")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", got)
	})

	t.Run("too far", func(t *testing.T) {
		_, err := ResolveName(roster, "Jane Roe")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := ResolveName(model.Roster{}, "John Doe")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("ambiguous tie", func(t *testing.T) {
		tied := model.Roster{
			{Name: "Jahn Dae", PayRate: 1},
			{Name: "Jihn Die", PayRate: 1},
		}
		// Both names sit at distance 2 from the query.
		_, err := ResolveName(tied, "John Doe")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestApplyEdit(t *testing.T) {
	roster := model.Roster{
		{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60},
		{Name: "Alice Brown", RegularHours: 35, OvertimeHours: 2, PayRate: 30},
	}

	updated, resolved, err := ApplyEdit(roster, Edit{Name: "john doe", Field: EditPayRate, Value: 65})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", resolved)
	assert.Equal(t, 65.0, updated.Index()["John Doe"].PayRate)
	assert.Equal(t, 60.0, roster[0].PayRate, "input roster is not mutated")

	updated, _, err = ApplyEdit(roster, Edit{Name: "Alice Brown", Field: EditOvertimeHours, Value: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Index()["Alice Brown"].OvertimeHours)

	_, _, err = ApplyEdit(roster, Edit{Name: "Nobody Here", Field: EditPayRate, Value: 1})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
