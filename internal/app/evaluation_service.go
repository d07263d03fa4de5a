package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	coreevaluation "github.com/example/slt/internal/core/evaluation"
	"github.com/example/slt/internal/core/staff"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/store"
)

// EvaluationServiceImpl implements the EvaluationService interface.
type EvaluationServiceImpl struct {
	registry  *store.Registry
	logWriter secondary.LogWriter
	logger    zerolog.Logger
}

// NewEvaluationService creates a new EvaluationService with injected dependencies.
func NewEvaluationService(registry *store.Registry, logWriter secondary.LogWriter, logger zerolog.Logger) *EvaluationServiceImpl {
	return &EvaluationServiceImpl{
		registry:  registry,
		logWriter: logWriter,
		logger:    logger.With().Str("component", "evaluation").Logger(),
	}
}

// EvaluateCase attaches feedback to the most recent session and sets the
// clinical rating. Earlier sessions and the case status are untouched.
func (s *EvaluationServiceImpl) EvaluateCase(ctx context.Context, req primary.EvaluateCaseRequest) error {
	c := s.registry.FindCaseByID(req.CaseID)
	if c != nil {
		if err := staff.CheckEvaluatorAccess(actorIdentity(ctx), c.ID); err != nil {
			return err
		}
		if err := checkCaseAccess(ctx, c); err != nil {
			return err
		}
	}

	guardCtx := coreevaluation.EvaluateContext{
		CaseID:     req.CaseID,
		CaseExists: c != nil,
		Rating:     req.Rating,
	}
	if c != nil {
		guardCtx.IsActive = c.IsActive
		guardCtx.SessionCount = len(c.Sessions)
	}
	if result := coreevaluation.CanEvaluate(guardCtx); !result.Allowed {
		return result.Error()
	}

	last := c.LastSession()
	last.SupervisorFeedback = strings.TrimSpace(req.Feedback)
	last.SupervisorReviewed = true
	c.ClinicalRating = req.Rating
	s.registry.Touch()

	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventEvaluate,
		fmt.Sprintf("session %d reviewed, rating %.1f", last.ID, req.Rating))
	return nil
}

// CloseCase ends a case. Closed cases never reopen.
func (s *EvaluationServiceImpl) CloseCase(ctx context.Context, req primary.CloseCaseRequest) error {
	c := s.registry.FindCaseByID(req.CaseID)
	var therapist *models.Therapist
	if c != nil {
		if err := checkCaseAccess(ctx, c); err != nil {
			return err
		}
		therapist = s.registry.FindTherapistByID(c.TherapistID)
	}

	endDate := strings.TrimSpace(req.EndDate)
	guardCtx := coreevaluation.CloseContext{
		CaseID:          req.CaseID,
		CaseExists:      c != nil,
		EndDate:         endDate,
		FinalStatus:     req.FinalStatus,
		Rating:          req.FinalRating,
		TherapistExists: therapist != nil,
	}
	if c != nil {
		guardCtx.IsActive = c.IsActive
		guardCtx.TherapistID = c.TherapistID
	}
	if result := coreevaluation.CanClose(guardCtx); !result.Allowed {
		return result.Error()
	}

	c.EndDate = endDate
	c.Status = strings.TrimSpace(req.FinalStatus)
	c.ClinicalRating = req.FinalRating
	c.IsActive = false
	therapist.CurrentCases = coreevaluation.ReleaseCaseload(therapist.CurrentCases)
	s.registry.Touch()

	s.logger.Debug().
		Int("case_id", c.ID).
		Int("therapist_id", therapist.ID).
		Int("therapist_load", therapist.CurrentCases).
		Msg("case closed")
	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventClose,
		fmt.Sprintf("closed %s as %s, rating %.1f", c.EndDate, c.Status, c.ClinicalRating))
	return nil
}

// ReviewPlan records a supervisor's decision on a case's plan.
// The case itself is not modified.
func (s *EvaluationServiceImpl) ReviewPlan(ctx context.Context, req primary.ReviewPlanRequest) error {
	supervisorID := req.SupervisorID
	if actor := actorIdentity(ctx); supervisorID == 0 && actor != nil && actor.IsSupervisor() {
		supervisorID = actor.ID
	}

	c := s.registry.FindCaseByID(req.CaseID)
	if c != nil {
		if err := checkCaseAccess(ctx, c); err != nil {
			return err
		}
	}

	guardCtx := coreevaluation.ReviewContext{
		CaseID:       req.CaseID,
		CaseExists:   c != nil,
		SupervisorID: supervisorID,
	}
	if c != nil {
		guardCtx.CaseSupervisorID = c.SupervisorID
	}
	if result := coreevaluation.CanReviewPlan(guardCtx); !result.Allowed {
		return result.Error()
	}

	decision := "changes requested"
	if req.Approved {
		decision = "approved"
	}
	detail := fmt.Sprintf("plan %s by supervisor %d", decision, supervisorID)
	if fb := strings.TrimSpace(req.Feedback); fb != "" {
		detail += ": " + fb
	}
	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventReviewPlan, detail)
	return nil
}

// Ensure EvaluationServiceImpl implements the interface
var _ primary.EvaluationService = (*EvaluationServiceImpl)(nil)
