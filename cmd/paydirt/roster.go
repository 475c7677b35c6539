package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/paydirt/internal/cli"
	"github.com/Veraticus/paydirt/internal/export"
	"github.com/Veraticus/paydirt/internal/merge"
	"github.com/Veraticus/paydirt/internal/model"
)

func rosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and manage the stored employee roster",
	}

	cmd.AddCommand(rosterListCmd())
	cmd.AddCommand(rosterImportCmd())
	cmd.AddCommand(rosterExportCmd())

	return cmd
}

func rosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the stored roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			roster, err := store.LoadBaseline(cmd.Context())
			if err != nil {
				return err
			}
			if len(roster) == 0 {
				fmt.Println(cli.FormatWarning("No employees stored yet. Import a roster with: paydirt roster import <file.csv>"))
				return nil
			}
			fmt.Println(cli.RenderRosterTable(roster))
			return nil
		},
	}
}

func rosterImportCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import employees from a CSV file",
		Long: `Imports a roster CSV (columns: name, regular_hours, overtime_hours,
pay_rate). By default imported records merge into the stored roster with the
standard conflict-resolution rules; --replace discards the stored roster
first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := readRosterFile(args[0])
			if err != nil {
				return err
			}
			if len(imported) == 0 {
				return fmt.Errorf("%s contains no employee rows", args[0])
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var final model.Roster
			if replace {
				final = imported
			} else {
				existing, err := store.LoadBaseline(cmd.Context())
				if err != nil {
					return err
				}
				final = merge.Merge(existing, imported)
			}

			bar := progressbar.NewOptions(len(final),
				progressbar.OptionSetDescription("Importing employees"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			for range final {
				_ = bar.Add(1)
			}

			if err := store.SaveBaseline(cmd.Context(), final); err != nil {
				return fmt.Errorf("saving roster: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d employees (%d stored)", len(imported), len(final))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace the stored roster instead of merging into it")
	return cmd
}

func rosterExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the stored roster as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			roster, err := store.LoadBaseline(cmd.Context())
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOut()

			return export.WriteRosterCSV(out, roster)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
