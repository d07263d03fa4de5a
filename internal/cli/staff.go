package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/wire"
)

// StaffCmd returns the staff command
func StaffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "staff",
		Short: "List therapists and supervisors with their logins",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			therapists, err := wire.DirectoryService().ListTherapists(ctx)
			if err != nil {
				return fmt.Errorf("failed to list therapists: %w", err)
			}
			supervisors, err := wire.DirectoryService().ListSupervisors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list supervisors: %w", err)
			}

			fmt.Println("\nTherapists")
			w := newTable()
			fmt.Fprintln(w, "LOGIN\tID\tNAME\tSPECIALIZATION\tCASES\tEMAIL")
			for _, t := range therapists {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\n", t.Login, t.ID, t.Name, t.Specialization, t.CurrentCases, t.Email)
			}
			w.Flush()

			fmt.Println("\nSupervisors")
			w = newTable()
			fmt.Fprintln(w, "LOGIN\tID\tNAME\tEMAIL")
			for _, s := range supervisors {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", s.Login, s.ID, s.Name, s.Email)
			}
			w.Flush()
			fmt.Println()
			return nil
		},
	}
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [staff-login]",
		Short: "Resolve a numeric staff login to an actor id",
		Long: `Resolve a numeric staff login. Therapists hold logins 1..T and
supervisors T+1..T+S. The printed actor id is what --actor expects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			login, err := parseID(args[0], "login")
			if err != nil {
				return err
			}
			identity, err := wire.DirectoryService().Login(cmd.Context(), login)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("✓ Welcome, %s (%s #%d)\n", identity.Name, identity.Role, identity.ID)
			fmt.Printf("  Use --actor %s\n", identity.FullID)
			return nil
		},
	}
}
