package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/cli"
	"github.com/example/slt/internal/core/staff"
	"github.com/example/slt/internal/ctxutil"
	"github.com/example/slt/internal/version"
	"github.com/example/slt/internal/wire"
)

func main() {
	os.Exit(execute(context.Background(), newRootCmd(), os.Args[1:], os.Stderr))
}

// execute runs the command tree, releases the store and reports a failure
// on stderr. It returns the process exit code.
func execute(ctx context.Context, rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "slt",
		Short:   "slt - speech-therapy case lifecycle manager",
		Version: version.String(),
		Long: `slt manages speech-therapy cases from allocation to closure:
patients, therapy plans, sessions, supervisor evaluation and progress reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			actor, _ := cmd.Flags().GetString("actor")
			if actor != "" {
				if _, err := staff.ParseFullID(actor); err != nil {
					return err
				}
			}
			cmd.SetContext(ctxutil.WithActorID(cmd.Context(), actor))
			return nil
		},
		// Persist whatever the command changed
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return wire.Flush(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().String("actor", os.Getenv("SLT_ACTOR"), "Acting staff member, e.g. therapist-1 or supervisor-2")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StaffCmd())
	rootCmd.AddCommand(cli.LoginCmd())

	// Case lifecycle
	rootCmd.AddCommand(cli.CaseCmd())
	rootCmd.AddCommand(cli.PlanCmd())
	rootCmd.AddCommand(cli.SessionCmd())

	// Views
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.DashboardCmd())

	return rootCmd
}
