package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/slt/internal/ports/primary"
)

// DashboardAdapter renders staff work queues.
type DashboardAdapter struct {
	service primary.DashboardService
	out     io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.DashboardService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		service: service,
		out:     out,
	}
}

// Therapist displays a therapist's active cases.
func (a *DashboardAdapter) Therapist(ctx context.Context, therapistID int) error {
	d, err := a.service.TherapistDashboard(ctx, therapistID)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s (%s), %d active cases\n\n", d.Therapist.Name, d.Therapist.Specialization, d.Therapist.CurrentCases)
	if len(d.ActiveCases) == 0 {
		fmt.Fprintln(a.out, "No active cases")
		return nil
	}
	writeCaseTable(a.out, d.ActiveCases)
	return nil
}

// Supervisor displays a supervisor's cases and review queues.
func (a *DashboardAdapter) Supervisor(ctx context.Context, supervisorID int) error {
	d, err := a.service.SupervisorDashboard(ctx, supervisorID)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s, %d cases under supervision\n", d.Supervisor.Name, len(d.Cases))

	a.section("Awaiting plan review", d.PlanReview)
	a.section("Ready for evaluation", d.Evaluation)
	a.section("All cases", d.Cases)
	return nil
}

func (a *DashboardAdapter) section(title string, cases []*primary.Case) {
	fmt.Fprintf(a.out, "\n%s (%d)\n", title, len(cases))
	if len(cases) == 0 {
		fmt.Fprintln(a.out, "  none")
		return
	}
	writeCaseTable(a.out, cases)
}
