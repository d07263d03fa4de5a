package primary

import "context"

// DashboardService defines the primary port for staff work queues.
type DashboardService interface {
	// TherapistDashboard lists a therapist's active cases.
	TherapistDashboard(ctx context.Context, therapistID int) (*TherapistDashboard, error)

	// SupervisorDashboard lists a supervisor's cases and review queues.
	SupervisorDashboard(ctx context.Context, supervisorID int) (*SupervisorDashboard, error)
}

// TherapistDashboard is the work view of one therapist.
type TherapistDashboard struct {
	Therapist   *Therapist
	ActiveCases []*Case
}

// SupervisorDashboard is the work view of one supervisor.
type SupervisorDashboard struct {
	Supervisor *Supervisor
	Cases      []*Case // every case under supervision
	PlanReview []*Case // cases with no sessions yet
	Evaluation []*Case // active cases ready for evaluation
}
