package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Veraticus/paydirt/internal/model"
)

// WriteReportPDF renders a payroll report as a one-page-per-overflow PDF
// table with a grand total row.
func WriteReportPDF(w io.Writer, report *model.PayrollReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payroll Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payroll Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", report.GeneratedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(6)
	pdf.Cell(0, 8, report.Summary)
	pdf.Ln(12)

	headers := []string{"Employee", "Reg Hrs", "OT Hrs", "Rate", "Reg Pay", "OT Pay", "Total"}
	widths := []float64{50, 18, 18, 22, 26, 26, 26}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range report.Lines {
		cells := []string{
			line.Name,
			formatFloat(line.RegularHours),
			formatFloat(line.OvertimeHours),
			"$" + formatMoney(line.PayRate),
			"$" + formatMoney(line.RegularPay),
			"$" + formatMoney(line.OvertimePay),
			"$" + formatMoney(line.TotalPay),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 8, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	span := widths[0] + widths[1] + widths[2] + widths[3] + widths[4] + widths[5]
	pdf.CellFormat(span, 8, "Total Payroll", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 8, "$"+formatMoney(report.TotalPayroll), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering payroll pdf: %w", err)
	}
	return nil
}
