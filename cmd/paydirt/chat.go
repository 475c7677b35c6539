package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/tui"
)

func chatCmd() *cobra.Command {
	var (
		sessionID  string
		attachPath string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive payroll chat session",
		Long: `Opens the conversational interface. Attach a timesheet with --attach to
submit it as the first turn, then review the merge and confirm to generate
payroll.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine, err := initEngine(store)
			if err != nil {
				return err
			}

			var doc *model.Document
			if attachPath != "" {
				if doc, err = readDocument(attachPath); err != nil {
					return err
				}
			}

			if sessionID == "" {
				sessionID = newSessionID()
			}

			return tui.Run(tui.Config{
				Engine:    engine,
				SessionID: sessionID,
				Document:  doc,
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "resume an existing session id")
	cmd.Flags().StringVar(&attachPath, "attach", "", "timesheet document to submit as the first turn")

	return cmd
}
