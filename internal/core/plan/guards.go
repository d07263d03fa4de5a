// Package plan contains the pure business logic for therapy plan operations.
// Guards are pure functions that evaluate preconditions without side effects.
package plan

import (
	"fmt"

	"github.com/example/slt/internal/core/caseerr"
)

// MaxGoals bounds the goals attached to one case.
const MaxGoals = 10

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Err     error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Err == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%s: %w", r.Reason, r.Err)
}

// AddGoalsContext provides context for goal creation guards.
type AddGoalsContext struct {
	CaseID        int
	CaseExists    bool
	ExistingGoals int
	NewTargets    []int // target_sessions of each new goal, in input order
}

// EditGoalContext provides context for goal edit guards.
type EditGoalContext struct {
	CaseID     int
	CaseExists bool
	GoalNumber int
	GoalCount  int
}

// CanAddGoals evaluates whether goals can be appended to a case.
// Rules:
// - Case must exist
// - At least one goal, each with a positive target
// - Existing plus new goals must not exceed MaxGoals
func CanAddGoals(ctx AddGoalsContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if len(ctx.NewTargets) == 0 {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrNoGoals,
		}
	}

	for i, target := range ctx.NewTargets {
		if target <= 0 {
			return GuardResult{
				Reason: fmt.Sprintf("goal %d has target %d", ctx.ExistingGoals+i+1, target),
				Err:    caseerr.ErrInvalidTarget,
			}
		}
	}

	if ctx.ExistingGoals+len(ctx.NewTargets) > MaxGoals {
		return GuardResult{
			Reason: fmt.Sprintf("case %d has %d goals, %d more would exceed %d",
				ctx.CaseID, ctx.ExistingGoals, len(ctx.NewTargets), MaxGoals),
			Err: caseerr.ErrGoalCapacityExceeded,
		}
	}

	return GuardResult{Allowed: true}
}

// CanEditGoal evaluates whether a goal can be edited.
// Rules:
// - Case must exist
// - Goal number must be within [1, goal count]
func CanEditGoal(ctx EditGoalContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if ctx.GoalNumber < 1 || ctx.GoalNumber > ctx.GoalCount {
		return GuardResult{
			Reason: fmt.Sprintf("goal %d on case %d (case has %d goals)", ctx.GoalNumber, ctx.CaseID, ctx.GoalCount),
			Err:    caseerr.ErrGoalNotFound,
		}
	}

	return GuardResult{Allowed: true}
}
