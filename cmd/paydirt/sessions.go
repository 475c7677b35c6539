package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/paydirt/internal/cli"
	"github.com/Veraticus/paydirt/internal/model"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect and manage chat sessions",
	}

	cmd.AddCommand(sessionsListCmd())
	cmd.AddCommand(sessionsShowCmd())
	cmd.AddCommand(sessionsClearCmd())

	return cmd
}

func sessionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sessions, err := store.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(cli.FormatWarning("No sessions yet. Start one with: paydirt chat"))
				return nil
			}

			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-28s %-24s %10s %10s  %s",
				"ID", "Stage", "Employees", "Confirmed", "Updated")))
			for _, s := range sessions {
				confirmed := ""
				if s.Confirmed {
					confirmed = cli.SuccessIcon
				}
				fmt.Printf("%-28s %-24s %10d %10s  %s\n",
					s.ID, s.Stage, s.Employees, confirmed, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func sessionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session's transcript and state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			session, err := store.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Session %s — %s", session.ID, session.Stage)))
			for _, msg := range session.Messages {
				prefix := cli.PromptStyle.Render("You: ")
				if msg.Role != model.RoleUser {
					prefix = cli.AssistantStyle.Render("Assistant: ")
				}
				fmt.Printf("%s%s\n\n", prefix, msg.Content)
			}

			if len(session.MergedPending) > 0 {
				fmt.Println(cli.FormatWarning("Pending merge awaiting confirmation:"))
				fmt.Println(cli.RenderRosterTable(session.MergedPending))
			}
			if session.Report != nil {
				fmt.Println(cli.RenderReportTable(session.Report))
			}
			return nil
		},
	}
}

func sessionsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <session-id>",
		Short: "Delete a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted session %s", args[0])))
			return nil
		},
	}
}
