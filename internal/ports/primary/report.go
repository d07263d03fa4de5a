package primary

import "context"

// ReportService defines the primary port for case progress reports.
type ReportService interface {
	// BuildReport renders a case's progress report.
	BuildReport(ctx context.Context, req BuildReportRequest) (*Report, error)

	// ExportReport renders a report and writes it into the report directory.
	ExportReport(ctx context.Context, req BuildReportRequest) (*ExportReportResponse, error)
}

// Report formats.
const (
	ReportFormatMarkdown = "md"
	ReportFormatHTML     = "html"
)

// BuildReportRequest contains parameters for rendering a report.
type BuildReportRequest struct {
	CaseID int
	Format string // md (default) or html
}

// Report is a rendered progress report.
type Report struct {
	CaseID   int
	Format   string
	FileName string
	Content  string
}

// ExportReportResponse contains the result of exporting a report.
type ExportReportResponse struct {
	Path   string
	Report *Report
}
