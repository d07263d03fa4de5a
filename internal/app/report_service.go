package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/report"
	"github.com/example/slt/internal/store"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	registry  *store.Registry
	reportDir string
}

// NewReportService creates a new ReportService writing exports into reportDir.
func NewReportService(registry *store.Registry, reportDir string) *ReportServiceImpl {
	return &ReportServiceImpl{
		registry:  registry,
		reportDir: reportDir,
	}
}

// BuildReport renders a case's progress report.
func (s *ReportServiceImpl) BuildReport(ctx context.Context, req primary.BuildReportRequest) (*primary.Report, error) {
	c := s.registry.FindCaseByID(req.CaseID)
	if c == nil {
		return nil, fmt.Errorf("case %d: %w", req.CaseID, caseerr.ErrInvalidCase)
	}
	p := s.registry.FindPatientByID(c.PatientID)
	if p == nil {
		return nil, fmt.Errorf("patient %d of case %d: %w", c.PatientID, c.ID, caseerr.ErrPatientNotFound)
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" || format == "markdown" {
		format = primary.ReportFormatMarkdown
	}

	content := report.Markdown(report.Data{
		Case:       c,
		Patient:    p,
		Therapist:  s.registry.FindTherapistByID(c.TherapistID),
		Supervisor: s.registry.FindSupervisorByID(c.SupervisorID),
	})

	switch format {
	case primary.ReportFormatMarkdown:
	case primary.ReportFormatHTML:
		html, err := report.HTML(content)
		if err != nil {
			return nil, err
		}
		content = html
	default:
		return nil, fmt.Errorf("report format %q (expected md or html): %w", req.Format, caseerr.ErrInvalidInput)
	}

	return &primary.Report{
		CaseID:   c.ID,
		Format:   format,
		FileName: report.FileName(c.ID, format),
		Content:  content,
	}, nil
}

// ExportReport renders a report and writes it into the report directory.
func (s *ReportServiceImpl) ExportReport(ctx context.Context, req primary.BuildReportRequest) (*primary.ExportReportResponse, error) {
	rep, err := s.BuildReport(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.reportDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w: %w", err, caseerr.ErrIOFailure)
	}
	path := filepath.Join(s.reportDir, rep.FileName)
	if err := os.WriteFile(path, []byte(rep.Content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w: %w", err, caseerr.ErrIOFailure)
	}

	return &primary.ExportReportResponse{Path: path, Report: rep}, nil
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
