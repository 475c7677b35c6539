package model

import "time"

// PayrollLine is the derived per-employee pay breakdown.
type PayrollLine struct {
	Name          string  `json:"name"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	PayRate       float64 `json:"pay_rate"`
	RegularPay    float64 `json:"regular_pay"`
	OvertimePay   float64 `json:"overtime_pay"`
	TotalPay      float64 `json:"total_pay"`
}

// PayrollReport is the complete payroll output for a confirmed roster.
// A regeneration supersedes any earlier report; reports are never merged.
type PayrollReport struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	ID           string        `json:"id"`
	Summary      string        `json:"summary"`
	Lines        []PayrollLine `json:"lines"`
	TotalPayroll float64       `json:"total_payroll"`
}
