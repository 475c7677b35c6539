package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeValidate(t *testing.T) {
	tests := []struct {
		name     string
		employee Employee
		wantErr  bool
	}{
		{name: "valid", employee: Employee{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60}},
		{name: "zero rate is legal", employee: Employee{Name: "Intern", RegularHours: 20}},
		{name: "blank name", employee: Employee{Name: "   ", RegularHours: 40}, wantErr: true},
		{name: "negative regular hours", employee: Employee{Name: "X", RegularHours: -1}, wantErr: true},
		{name: "negative overtime", employee: Employee{Name: "X", OvertimeHours: -0.5}, wantErr: true},
		{name: "negative rate", employee: Employee{Name: "X", PayRate: -10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.employee.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmployee)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRosterIndexLastWriteWins(t *testing.T) {
	roster := Roster{
		{Name: "John Doe", RegularHours: 40},
		{Name: "John Doe", RegularHours: 45},
	}
	assert.Equal(t, 45.0, roster.Index()["John Doe"].RegularHours)
}

func TestRosterCloneIsIndependent(t *testing.T) {
	roster := Roster{{Name: "John Doe", PayRate: 60}}
	clone := roster.Clone()
	clone[0].PayRate = 99
	assert.Equal(t, 60.0, roster[0].PayRate)
}

func TestSessionTranscript(t *testing.T) {
	s := NewSession("sess-1")
	assert.Equal(t, StageInit, s.Stage)

	s.Append(RoleUser, "first")
	s.Append(RoleAssistant, "reply")
	s.Append(RoleUser, "second")

	assert.Equal(t, "second", s.LastUserMessage())
	require.Len(t, s.RecentMessages(2), 2)
	assert.Equal(t, "reply", s.RecentMessages(2)[0].Content)
	assert.Len(t, s.RecentMessages(10), 3)
}
