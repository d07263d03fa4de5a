package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/slt/internal/core/caseerr"
	coregoal "github.com/example/slt/internal/core/goal"
	coreplan "github.com/example/slt/internal/core/plan"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/store"
)

// PlanServiceImpl implements the PlanService interface.
type PlanServiceImpl struct {
	registry  *store.Registry
	logWriter secondary.LogWriter
	logger    zerolog.Logger
}

// NewPlanService creates a new PlanService with injected dependencies.
func NewPlanService(registry *store.Registry, logWriter secondary.LogWriter, logger zerolog.Logger) *PlanServiceImpl {
	return &PlanServiceImpl{
		registry:  registry,
		logWriter: logWriter,
		logger:    logger.With().Str("component", "plan").Logger(),
	}
}

// AddGoals appends goals to a case's plan. Either every goal is added or none.
func (s *PlanServiceImpl) AddGoals(ctx context.Context, req primary.AddGoalsRequest) ([]*primary.Goal, error) {
	c := s.registry.FindCaseByID(req.CaseID)
	if c != nil {
		if err := checkCaseAccess(ctx, c); err != nil {
			return nil, err
		}
	}

	targets := make([]int, len(req.Goals))
	for i, g := range req.Goals {
		targets[i] = g.TargetSessions
	}
	guardCtx := coreplan.AddGoalsContext{
		CaseID:     req.CaseID,
		CaseExists: c != nil,
		NewTargets: targets,
	}
	if c != nil {
		guardCtx.ExistingGoals = len(c.Goals)
	}
	if result := coreplan.CanAddGoals(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	first := len(c.Goals)
	for _, g := range req.Goals {
		c.Goals = append(c.Goals, models.TherapyGoal{
			ID:             len(c.Goals) + 1,
			Description:    strings.TrimSpace(g.Description),
			TargetSessions: g.TargetSessions,
		})
	}
	s.registry.Touch()

	added := make([]*primary.Goal, 0, len(req.Goals))
	for i := first; i < len(c.Goals); i++ {
		added = append(added, goalToPort(i+1, c.Goals[i]))
	}

	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventAddGoals,
		fmt.Sprintf("added goals %d-%d", first+1, len(c.Goals)))
	return added, nil
}

// EditGoal changes a goal's description and/or target without touching progress.
func (s *PlanServiceImpl) EditGoal(ctx context.Context, req primary.EditGoalRequest) (*primary.Goal, error) {
	c := s.registry.FindCaseByID(req.CaseID)
	if c != nil {
		if err := checkCaseAccess(ctx, c); err != nil {
			return nil, err
		}
	}

	guardCtx := coreplan.EditGoalContext{
		CaseID:     req.CaseID,
		CaseExists: c != nil,
		GoalNumber: req.GoalNumber,
	}
	if c != nil {
		guardCtx.GoalCount = len(c.Goals)
	}
	if result := coreplan.CanEditGoal(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	g := c.Goal(req.GoalNumber)
	before := *g
	g.Description, g.TargetSessions = coregoal.MergeEdit(
		g.Description, g.TargetSessions,
		strings.TrimSpace(req.Description), req.TargetSessions,
	)
	if *g != before {
		s.registry.Touch()
	}

	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventEditGoal,
		fmt.Sprintf("goal %d: %q target %d", req.GoalNumber, g.Description, g.TargetSessions))
	return goalToPort(req.GoalNumber, *g), nil
}

// GetPlan lists a case's goals with their derived status.
func (s *PlanServiceImpl) GetPlan(ctx context.Context, caseID int) ([]*primary.Goal, error) {
	c := s.registry.FindCaseByID(caseID)
	if c == nil {
		return nil, fmt.Errorf("case %d: %w", caseID, caseerr.ErrInvalidCase)
	}
	return goalsToPort(c.Goals), nil
}

// Ensure PlanServiceImpl implements the interface
var _ primary.PlanService = (*PlanServiceImpl)(nil)
