package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/paydirt/internal/cli"
	"github.com/Veraticus/paydirt/internal/config"
	"github.com/Veraticus/paydirt/internal/export"
	"github.com/Veraticus/paydirt/internal/merge"
	"github.com/Veraticus/paydirt/internal/model"
)

func mergeCmd() *cobra.Command {
	var (
		existingPath string
		apply        bool
	)

	cmd := &cobra.Command{
		Use:   "merge <updates.csv>",
		Short: "Preview a roster merge without a chat session",
		Long: `Merges update records against the stored roster (or a roster file given
with --existing) using the standard conflict-resolution rules: hours come from
the updates, a zero pay rate keeps the stored rate, and nobody is dropped.
With --apply the merged roster replaces the stored one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates, err := readRosterFile(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var existing model.Roster
			if existingPath != "" {
				if existing, err = readRosterFile(existingPath); err != nil {
					return err
				}
			} else if existing, err = store.LoadBaseline(cmd.Context()); err != nil {
				return err
			}

			merged := merge.Merge(existing, updates)
			summary := merge.Summarize(existing, updates)

			fmt.Println(cli.TitleStyle.Render("Merge preview"))
			fmt.Println(cli.RenderRosterTable(merged))
			fmt.Println(merge.FormatSummary(merged, summary))

			if apply {
				if err := store.SaveBaseline(cmd.Context(), merged); err != nil {
					return fmt.Errorf("saving merged roster: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Stored roster replaced with %d employees", len(merged))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&existingPath, "existing", "", "roster csv to merge against instead of the stored roster")
	cmd.Flags().BoolVar(&apply, "apply", false, "replace the stored roster with the merge result")

	return cmd
}

func readRosterFile(path string) (model.Roster, error) {
	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("opening roster file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	roster, err := export.ReadRosterCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", path, err)
	}
	return roster, nil
}
