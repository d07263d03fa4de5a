package plan

import (
	"errors"
	"testing"

	"github.com/example/slt/internal/core/caseerr"
)

func TestCanAddGoals(t *testing.T) {
	tests := []struct {
		name        string
		ctx         AddGoalsContext
		wantAllowed bool
		wantErr     error
	}{
		{
			name: "can add goals to an empty plan",
			ctx: AddGoalsContext{
				CaseID:     1,
				CaseExists: true,
				NewTargets: []int{5, 3},
			},
			wantAllowed: true,
		},
		{
			name: "can fill the plan to the limit",
			ctx: AddGoalsContext{
				CaseID:        1,
				CaseExists:    true,
				ExistingGoals: 8,
				NewTargets:    []int{1, 1},
			},
			wantAllowed: true,
		},
		{
			name: "cannot exceed the goal limit",
			ctx: AddGoalsContext{
				CaseID:        1,
				CaseExists:    true,
				ExistingGoals: 9,
				NewTargets:    []int{1, 1},
			},
			wantErr: caseerr.ErrGoalCapacityExceeded,
		},
		{
			name:    "cannot add to unknown case",
			ctx:     AddGoalsContext{CaseID: 7, NewTargets: []int{1}},
			wantErr: caseerr.ErrInvalidCase,
		},
		{
			name:    "cannot add an empty goal list",
			ctx:     AddGoalsContext{CaseID: 1, CaseExists: true},
			wantErr: caseerr.ErrNoGoals,
		},
		{
			name: "cannot add a goal with zero target",
			ctx: AddGoalsContext{
				CaseID:     1,
				CaseExists: true,
				NewTargets: []int{4, 0},
			},
			wantErr: caseerr.ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAddGoals(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Fatalf("Allowed = %v, want %v (reason %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), tt.wantErr) {
				t.Errorf("Error() = %v, want %v", result.Error(), tt.wantErr)
			}
		})
	}
}

func TestCanEditGoal(t *testing.T) {
	tests := []struct {
		name        string
		ctx         EditGoalContext
		wantAllowed bool
		wantErr     error
	}{
		{
			name:        "first goal",
			ctx:         EditGoalContext{CaseID: 1, CaseExists: true, GoalNumber: 1, GoalCount: 2},
			wantAllowed: true,
		},
		{
			name:        "last goal",
			ctx:         EditGoalContext{CaseID: 1, CaseExists: true, GoalNumber: 2, GoalCount: 2},
			wantAllowed: true,
		},
		{
			name:    "goal zero",
			ctx:     EditGoalContext{CaseID: 1, CaseExists: true, GoalNumber: 0, GoalCount: 2},
			wantErr: caseerr.ErrGoalNotFound,
		},
		{
			name:    "past the end",
			ctx:     EditGoalContext{CaseID: 1, CaseExists: true, GoalNumber: 3, GoalCount: 2},
			wantErr: caseerr.ErrGoalNotFound,
		},
		{
			name:    "unknown case",
			ctx:     EditGoalContext{CaseID: 9, GoalNumber: 1, GoalCount: 1},
			wantErr: caseerr.ErrInvalidCase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanEditGoal(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Fatalf("Allowed = %v, want %v (reason %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), tt.wantErr) {
				t.Errorf("Error() = %v, want %v", result.Error(), tt.wantErr)
			}
		})
	}
}
