package app

import (
	"context"
	"fmt"

	"github.com/example/slt/internal/core/caseerr"
	coreevaluation "github.com/example/slt/internal/core/evaluation"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/store"
)

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	registry *store.Registry
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(registry *store.Registry) *DashboardServiceImpl {
	return &DashboardServiceImpl{registry: registry}
}

// TherapistDashboard lists the therapist's active cases.
func (s *DashboardServiceImpl) TherapistDashboard(ctx context.Context, therapistID int) (*primary.TherapistDashboard, error) {
	t := s.registry.FindTherapistByID(therapistID)
	if t == nil {
		return nil, fmt.Errorf("therapist %d: %w", therapistID, caseerr.ErrUnknownTherapist)
	}

	dash := &primary.TherapistDashboard{Therapist: therapistToPort(t)}
	for _, c := range s.registry.Cases() {
		if c.TherapistID == therapistID && c.IsActive {
			dash.ActiveCases = append(dash.ActiveCases, caseToPort(s.registry, c))
		}
	}
	return dash, nil
}

// SupervisorDashboard lists the supervisor's cases, the cases awaiting plan
// review (no sessions yet) and the active cases ready for evaluation.
func (s *DashboardServiceImpl) SupervisorDashboard(ctx context.Context, supervisorID int) (*primary.SupervisorDashboard, error) {
	sup := s.registry.FindSupervisorByID(supervisorID)
	if sup == nil {
		return nil, fmt.Errorf("supervisor %d: %w", supervisorID, caseerr.ErrUnknownSupervisor)
	}

	dash := &primary.SupervisorDashboard{Supervisor: supervisorToPort(s.registry, sup)}
	for _, c := range s.registry.Cases() {
		if c.SupervisorID != supervisorID {
			continue
		}
		view := caseToPort(s.registry, c)
		dash.Cases = append(dash.Cases, view)
		if len(c.Sessions) == 0 {
			dash.PlanReview = append(dash.PlanReview, view)
		}
		if c.IsActive && len(c.Sessions) >= coreevaluation.MinSessionsForEvaluation {
			dash.Evaluation = append(dash.Evaluation, view)
		}
	}
	return dash, nil
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
