package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/core/staff"
	"github.com/example/slt/internal/ctxutil"
	"github.com/example/slt/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show staff work queues",
		Long: `Show a therapist's active cases or a supervisor's review queues.

The id defaults to the --actor staff member.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "therapist [therapist-id]",
		Short: "Show a therapist's active cases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := staffIDArg(cmd, args, staff.RoleTherapist)
			if err != nil {
				return err
			}
			return wire.DashboardAdapter().Therapist(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "supervisor [supervisor-id]",
		Short: "Show a supervisor's cases and review queues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := staffIDArg(cmd, args, staff.RoleSupervisor)
			if err != nil {
				return err
			}
			return wire.DashboardAdapter().Supervisor(cmd.Context(), id)
		},
	})

	return cmd
}

// staffIDArg takes the id from args, or from the actor when it has role.
func staffIDArg(cmd *cobra.Command, args []string, role staff.Role) (int, error) {
	if len(args) == 1 {
		return parseID(args[0], string(role))
	}
	if actor, err := staff.ParseFullID(ctxutil.ActorFromContext(cmd.Context())); err == nil && actor.Role == role {
		return actor.ID, nil
	}
	return 0, fmt.Errorf("%s id required (pass it or set --actor %s-<id>)", role, role)
}
