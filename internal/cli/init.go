package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/config"
	"github.com/example/slt/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the slt data directory",
		Long: `Write a default config.yaml to ~/.slt (or $SLT_DATA_DIR), create the
database with the required schema and seed the staff roster.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			dataDir, err := config.ResolveDataDir()
			if err != nil {
				return err
			}

			path, err := config.WriteDefault(dataDir, force)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Config at %s\n", path)

			cfg := wire.Config()
			// Seeding the roster marks the store dirty; persist it now
			if err := wire.Flush(cmd.Context()); err != nil {
				return fmt.Errorf("failed to save store: %w", err)
			}
			fmt.Printf("✓ Database initialized at %s\n", cfg.DBPath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  slt staff")
			fmt.Println("  slt case allocate --name \"Ann\" --supervisor 1")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config.yaml")
	return cmd
}
