package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [case-id]",
		Short: "Render a case progress report",
		Long: `Render a case progress report as Markdown or HTML.

With --export the report is written to the report directory as
Case_<id>_Report.<md|html> instead of printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			export, _ := cmd.Flags().GetBool("export")
			req := primary.BuildReportRequest{CaseID: caseID, Format: format}

			if export {
				resp, err := wire.ReportService().ExportReport(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("failed to export report: %w", err)
				}
				fmt.Printf("✓ Report written to %s\n", resp.Path)
				return nil
			}

			r, err := wire.ReportService().BuildReport(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
			fmt.Print(r.Content)
			return nil
		},
	}
	cmd.Flags().String("format", primary.ReportFormatMarkdown, "Report format: md or html")
	cmd.Flags().Bool("export", false, "Write the report to the report directory")
	return cmd
}
