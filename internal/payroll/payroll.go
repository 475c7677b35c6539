// Package payroll computes pay breakdowns and report totals for a roster.
package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/paydirt/internal/model"
)

// OvertimeMultiplier is the fixed premium applied to overtime hours. It is not
// configurable per employee.
const OvertimeMultiplier = 1.5

var overtimeFactor = decimal.NewFromFloat(OvertimeMultiplier)

// Compute derives a payroll report from a roster. The roster is validated
// first; a record with a missing name or any negative field fails the whole
// computation rather than contributing a silent zero.
//
// Arithmetic runs on fixed-point decimals so intermediate sums do not drift;
// two-decimal rounding applies only to the rendered summary.
func Compute(roster model.Roster) (*model.PayrollReport, error) {
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("payroll input rejected: %w", err)
	}

	lines := make([]model.PayrollLine, 0, len(roster))
	total := decimal.Zero

	for _, emp := range roster {
		rate := decimal.NewFromFloat(emp.PayRate)
		regular := decimal.NewFromFloat(emp.RegularHours).Mul(rate)
		overtime := decimal.NewFromFloat(emp.OvertimeHours).Mul(rate).Mul(overtimeFactor)
		pay := regular.Add(overtime)
		total = total.Add(pay)

		lines = append(lines, model.PayrollLine{
			Name:          emp.Name,
			RegularHours:  emp.RegularHours,
			OvertimeHours: emp.OvertimeHours,
			PayRate:       emp.PayRate,
			RegularPay:    regular.InexactFloat64(),
			OvertimePay:   overtime.InexactFloat64(),
			TotalPay:      pay.InexactFloat64(),
		})
	}

	return &model.PayrollReport{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Lines:        lines,
		TotalPayroll: total.InexactFloat64(),
		Summary: fmt.Sprintf("Payroll calculated for %d employees. Total payroll: $%s",
			len(lines), total.StringFixed(2)),
	}, nil
}

// FormatReport renders a report as display text, one block per employee with
// a grand total, mirroring what the conversational layer presents.
func FormatReport(report *model.PayrollReport) string {
	var b strings.Builder
	b.WriteString("PAYROLL REPORT\n")
	b.WriteString(strings.Repeat("=", 50))

	for _, line := range report.Lines {
		fmt.Fprintf(&b, "\n\n%s\n", line.Name)
		fmt.Fprintf(&b, "• Regular: %gh × $%.2f = $%.2f\n", line.RegularHours, line.PayRate, line.RegularPay)
		if line.OvertimeHours > 0 {
			fmt.Fprintf(&b, "• Overtime: %gh × $%.2f = $%.2f\n",
				line.OvertimeHours, line.PayRate*OvertimeMultiplier, line.OvertimePay)
		}
		fmt.Fprintf(&b, "• Total pay: $%.2f", line.TotalPay)
	}

	fmt.Fprintf(&b, "\n\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "TOTAL PAYROLL: $%.2f", report.TotalPayroll)
	return b.String()
}
