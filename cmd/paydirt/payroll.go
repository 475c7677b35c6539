package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/paydirt/internal/cli"
	"github.com/Veraticus/paydirt/internal/config"
	"github.com/Veraticus/paydirt/internal/export"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/payroll"
)

func payrollCmd() *cobra.Command {
	var (
		sessionID  string
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Compute or export a payroll report",
		Long: `Without flags, computes payroll from the stored roster and prints it.
With --session, exports that session's most recent generated report instead
of recomputing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var report *model.PayrollReport
			if sessionID != "" {
				if report, err = store.GetLatestReport(cmd.Context(), sessionID); err != nil {
					return fmt.Errorf("no report for session %s: %w", sessionID, err)
				}
			} else {
				roster, err := store.LoadBaseline(cmd.Context())
				if err != nil {
					return err
				}
				if report, err = payroll.Compute(roster); err != nil {
					return err
				}
			}

			out, closeOut, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOut()

			switch format {
			case "table":
				fmt.Fprintln(out, cli.TitleStyle.Render("Payroll Report"))
				fmt.Fprintln(out, cli.RenderReportTable(report))
				fmt.Fprintln(out, cli.SubtleStyle.Render(report.Summary))
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case "csv":
				return export.WriteReportCSV(out, report)
			case "pdf":
				if outputPath == "" {
					return fmt.Errorf("--format pdf requires --output")
				}
				return export.WriteReportPDF(out, report)
			default:
				return fmt.Errorf("unknown format %q (want table, json, csv, or pdf)", format)
			}
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "export this session's latest report instead of recomputing")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, csv, pdf")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(config.ExpandPath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
