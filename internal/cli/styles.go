// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paydirt/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#D4A017") // Gold
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// AssistantStyle formats assistant chat turns.
	AssistantStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	MoneyIcon   = "💰"
	SheetIcon   = "📄"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// RenderRosterTable renders a roster as an aligned table for command output.
func RenderRosterTable(roster model.Roster) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-25s %10s %10s %10s", "Name", "Regular", "Overtime", "Rate")))
	b.WriteString("\n")
	for _, emp := range roster {
		fmt.Fprintf(&b, "%-25s %10g %10g %9s\n",
			emp.Name, emp.RegularHours, emp.OvertimeHours, fmt.Sprintf("$%.2f", emp.PayRate))
	}
	return b.String()
}

// RenderReportTable renders a payroll report as an aligned table with totals.
func RenderReportTable(report *model.PayrollReport) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-25s %8s %8s %9s %11s %10s %11s",
		"Name", "Reg", "OT", "Rate", "Reg Pay", "OT Pay", "Total")))
	b.WriteString("\n")
	for _, line := range report.Lines {
		fmt.Fprintf(&b, "%-25s %8g %8g %9s %11s %10s %11s\n",
			line.Name, line.RegularHours, line.OvertimeHours,
			fmt.Sprintf("$%.2f", line.PayRate),
			fmt.Sprintf("$%.2f", line.RegularPay),
			fmt.Sprintf("$%.2f", line.OvertimePay),
			fmt.Sprintf("$%.2f", line.TotalPay))
	}
	b.WriteString(SubtleStyle.Render(strings.Repeat("─", 86)))
	fmt.Fprintf(&b, "\n%-25s %s\n", "TOTAL PAYROLL",
		SuccessStyle.Render(fmt.Sprintf("$%.2f", report.TotalPayroll)))
	return b.String()
}
