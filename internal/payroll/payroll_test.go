package payroll

import (
	"testing"

	"github.com/Veraticus/paydirt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		roster      model.Roster
		wantTotal   float64
		wantSummary string
		wantErr     bool
	}{
		{
			name: "single employee with overtime",
			roster: model.Roster{
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50.0},
			},
			wantTotal:   2112.5,
			wantSummary: "Payroll calculated for 1 employees. Total payroll: $2112.50",
		},
		{
			name: "multiple employees accumulate the grand total",
			roster: model.Roster{
				{Name: "John Doe", RegularHours: 40, OvertimeHours: 5, PayRate: 60},
				{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50},
			},
			// 40*60 + 5*60*1.5 = 2850; plus Jane's 2112.50
			wantTotal:   4962.5,
			wantSummary: "Payroll calculated for 2 employees. Total payroll: $4962.50",
		},
		{
			name:        "empty roster yields a zero report",
			roster:      model.Roster{},
			wantTotal:   0,
			wantSummary: "Payroll calculated for 0 employees. Total payroll: $0.00",
		},
		{
			name: "zero rate contributes zero pay but is not an error",
			roster: model.Roster{
				{Name: "New Hire", RegularHours: 40, OvertimeHours: 0, PayRate: 0},
			},
			wantTotal:   0,
			wantSummary: "Payroll calculated for 1 employees. Total payroll: $0.00",
		},
		{
			name: "negative hours are rejected, not clamped",
			roster: model.Roster{
				{Name: "John Doe", RegularHours: -1, OvertimeHours: 0, PayRate: 60},
			},
			wantErr: true,
		},
		{
			name: "missing name is rejected",
			roster: model.Roster{
				{Name: "  ", RegularHours: 10, OvertimeHours: 0, PayRate: 20},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Compute(tt.roster)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidEmployee)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, report.TotalPayroll, 1e-6)
			assert.Equal(t, tt.wantSummary, report.Summary)
			assert.NotEmpty(t, report.ID)
		})
	}
}

func TestComputeLineArithmetic(t *testing.T) {
	report, err := Compute(model.Roster{
		{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50.0},
	})
	require.NoError(t, err)
	require.Len(t, report.Lines, 1)

	line := report.Lines[0]
	assert.InDelta(t, 1925.0, line.RegularPay, 1e-6)
	assert.InDelta(t, 187.5, line.OvertimePay, 1e-6)
	assert.InDelta(t, 2112.5, line.TotalPay, 1e-6)
	assert.InDelta(t, line.RegularHours*line.PayRate+line.OvertimeHours*line.PayRate*1.5, line.TotalPay, 1e-6)
}

func TestComputeTotalEqualsSumOfLines(t *testing.T) {
	report, err := Compute(model.Roster{
		{Name: "A", RegularHours: 13.37, OvertimeHours: 1.1, PayRate: 21.45},
		{Name: "B", RegularHours: 40, OvertimeHours: 0, PayRate: 33.33},
		{Name: "C", RegularHours: 17.25, OvertimeHours: 8.75, PayRate: 19.99},
	})
	require.NoError(t, err)

	var sum float64
	for _, line := range report.Lines {
		sum += line.TotalPay
	}
	assert.InDelta(t, sum, report.TotalPayroll, 1e-6)
}

func TestFormatReport(t *testing.T) {
	report, err := Compute(model.Roster{
		{Name: "Jane Smith", RegularHours: 38.5, OvertimeHours: 2.5, PayRate: 50.0},
		{Name: "No Overtime", RegularHours: 10, OvertimeHours: 0, PayRate: 20},
	})
	require.NoError(t, err)

	text := FormatReport(report)
	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "• Regular: 38.5h × $50.00 = $1925.00")
	assert.Contains(t, text, "• Overtime: 2.5h × $75.00 = $187.50")
	assert.Contains(t, text, "TOTAL PAYROLL: $2312.50")
	// Overtime lines are omitted for employees without overtime.
	assert.NotContains(t, text, "Overtime: 0h")
}
