// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/slt/internal/ports/primary"
)

// CaseAdapter renders case queries for the terminal.
type CaseAdapter struct {
	service primary.CaseQueryService
	out     io.Writer
}

// NewCaseAdapter creates a new CaseAdapter with the given service.
func NewCaseAdapter(service primary.CaseQueryService, out io.Writer) *CaseAdapter {
	return &CaseAdapter{
		service: service,
		out:     out,
	}
}

// Show displays the full view of one case.
func (a *CaseAdapter) Show(ctx context.Context, caseID int) (*primary.Case, error) {
	c, err := a.service.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	fmt.Fprintf(a.out, "\nCase %d  %s\n", c.ID, CaseBadge(c))
	fmt.Fprintf(a.out, "Patient:    %s (#%d), %s\n", c.PatientName, c.PatientID, c.Diagnosis)
	fmt.Fprintf(a.out, "Therapist:  %s (#%d)\n", c.TherapistName, c.TherapistID)
	fmt.Fprintf(a.out, "Supervisor: %s (#%d)\n", c.SupervisorName, c.SupervisorID)
	fmt.Fprintf(a.out, "Started:    %s\n", c.StartDate)
	if c.EndDate != "" {
		fmt.Fprintf(a.out, "Ended:      %s\n", c.EndDate)
	}
	fmt.Fprintf(a.out, "Rating:     %.1f/5.0\n", c.ClinicalRating)

	fmt.Fprintln(a.out)
	if len(c.Goals) == 0 {
		fmt.Fprintln(a.out, "No goals set")
	} else {
		writeGoalTable(a.out, c.Goals)
	}

	fmt.Fprintln(a.out)
	if len(c.Sessions) == 0 {
		fmt.Fprintln(a.out, "No sessions recorded")
	} else {
		writeSessionTable(a.out, c.Sessions)
	}
	fmt.Fprintln(a.out)

	return c, nil
}

// List lists cases matching the filters.
func (a *CaseAdapter) List(ctx context.Context, filters primary.CaseFilters) error {
	cases, err := a.service.SearchCases(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list cases: %w", err)
	}

	if len(cases) == 0 {
		fmt.Fprintln(a.out, "No cases found")
		return nil
	}

	writeCaseTable(a.out, cases)
	return nil
}
