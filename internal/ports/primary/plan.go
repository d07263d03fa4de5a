package primary

import "context"

// PlanService defines the primary port for therapy plan operations.
type PlanService interface {
	// AddGoals appends goals to a case's plan.
	AddGoals(ctx context.Context, req AddGoalsRequest) ([]*Goal, error)

	// EditGoal changes a goal's description and/or target. Progress is kept.
	EditGoal(ctx context.Context, req EditGoalRequest) (*Goal, error)

	// GetPlan lists a case's goals with their derived status.
	GetPlan(ctx context.Context, caseID int) ([]*Goal, error)
}

// GoalSpec describes one goal to add.
type GoalSpec struct {
	Description    string
	TargetSessions int
}

// AddGoalsRequest contains parameters for adding goals.
type AddGoalsRequest struct {
	CaseID int
	Goals  []GoalSpec
}

// EditGoalRequest contains parameters for editing a goal.
// An empty Description or a non-positive TargetSessions keeps the current value.
type EditGoalRequest struct {
	CaseID         int
	GoalNumber     int // 1-based
	Description    string
	TargetSessions int
}

// Goal represents a therapy goal at the port boundary.
type Goal struct {
	Number         int
	Description    string
	TargetSessions int
	Achieved       int
	Status         string // Not Started, In Progress, Completed
}
