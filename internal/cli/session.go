package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/wire"
)

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and list therapy sessions",
	}

	cmd.AddCommand(sessionRecordCmd())
	cmd.AddCommand(sessionListCmd())

	return cmd
}

func sessionRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [case-id]",
		Short: "Record a session on an active case",
		Long: `Record a session on an active case. With --goal the session counts
towards that goal's target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			date, _ := cmd.Flags().GetString("date")
			activities, _ := cmd.Flags().GetString("activities")
			observations, _ := cmd.Flags().GetString("observations")
			goalNumber, _ := cmd.Flags().GetInt("goal")

			s, err := wire.SessionService().RecordSession(cmd.Context(), primary.RecordSessionRequest{
				CaseID:       caseID,
				Date:         date,
				Activities:   activities,
				Observations: observations,
				GoalNumber:   goalNumber,
			})
			if err != nil {
				return fmt.Errorf("failed to record session: %w", err)
			}

			fmt.Printf("✓ Recorded session %d on case %d (%s)\n", s.Number, caseID, s.Date)
			return nil
		},
	}
	cmd.Flags().String("date", "today", "Session date (YYYY-MM-DD or today)")
	cmd.Flags().String("activities", "", "Activities performed")
	cmd.Flags().String("observations", "", "Clinical observations")
	cmd.Flags().Int("goal", 0, "Goal number this session advances")
	return cmd
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [case-id]",
		Short: "List the sessions of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			sessions, err := wire.SessionService().ListSessions(cmd.Context(), caseID)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions recorded")
				return nil
			}

			w := newTable()
			fmt.Fprintln(w, "#\tDATE\tACTIVITIES\tOBSERVATIONS\tFEEDBACK")
			for _, s := range sessions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.Number, s.Date, s.Activities, s.Observations, s.SupervisorFeedback)
			}
			w.Flush()
			return nil
		},
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}
