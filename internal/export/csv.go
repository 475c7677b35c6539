// Package export renders rosters and payroll reports to interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/paydirt/internal/model"
)

var rosterHeader = []string{"name", "regular_hours", "overtime_hours", "pay_rate"}

// WriteRosterCSV writes a roster with a header row.
func WriteRosterCSV(w io.Writer, roster model.Roster) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rosterHeader); err != nil {
		return fmt.Errorf("writing roster header: %w", err)
	}
	for _, emp := range roster {
		record := []string{
			emp.Name,
			formatFloat(emp.RegularHours),
			formatFloat(emp.OvertimeHours),
			formatFloat(emp.PayRate),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing roster row for %s: %w", emp.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRosterCSV parses a roster from CSV. The header row is required and may
// list the columns in any order; unknown columns are ignored. Every parsed
// record must validate.
func ReadRosterCSV(r io.Reader) (model.Roster, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading roster header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameIdx, ok := columns["name"]
	if !ok {
		return nil, fmt.Errorf("roster csv is missing a name column")
	}

	var roster model.Roster
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading roster row %d: %w", line, err)
		}
		line++

		emp := model.Employee{Name: strings.TrimSpace(record[nameIdx])}
		if emp.RegularHours, err = floatColumn(record, columns, "regular_hours"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if emp.OvertimeHours, err = floatColumn(record, columns, "overtime_hours"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if emp.PayRate, err = floatColumn(record, columns, "pay_rate"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if err := emp.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		roster = append(roster, emp)
	}
	return roster, nil
}

var reportHeader = []string{
	"name", "regular_hours", "overtime_hours", "pay_rate",
	"regular_pay", "overtime_pay", "total_pay",
}

// WriteReportCSV writes payroll lines with a trailing TOTAL row.
func WriteReportCSV(w io.Writer, report *model.PayrollReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, line := range report.Lines {
		record := []string{
			line.Name,
			formatFloat(line.RegularHours),
			formatFloat(line.OvertimeHours),
			formatFloat(line.PayRate),
			formatMoney(line.RegularPay),
			formatMoney(line.OvertimePay),
			formatMoney(line.TotalPay),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing report row for %s: %w", line.Name, err)
		}
	}
	total := []string{"TOTAL", "", "", "", "", "", formatMoney(report.TotalPayroll)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("writing report total: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func floatColumn(record []string, columns map[string]int, name string) (float64, error) {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return 0, nil
	}
	raw := strings.TrimSpace(record[idx])
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", name, err)
	}
	return value, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
