// Package evaluation contains the pure business logic for case evaluation and
// closure. A case moves Active -> Active on evaluation and Active -> closed on
// closure; closed is terminal.
package evaluation

import (
	"fmt"
	"strings"

	"github.com/example/slt/internal/core/calendar"
	"github.com/example/slt/internal/core/caseerr"
)

// MinSessionsForEvaluation is the session-count gate for clinical evaluation.
const MinSessionsForEvaluation = 10

// Rating bounds.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Common final statuses. Any other non-active text is accepted too.
const (
	StatusCompleted    = "Completed"
	StatusDiscontinued = "Discontinued"
)

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

// EvaluateContext provides context for evaluation guards.
type EvaluateContext struct {
	CaseID       int
	CaseExists   bool
	IsActive     bool
	SessionCount int
	Rating       float64
}

// CloseContext provides context for closure guards.
type CloseContext struct {
	CaseID          int
	CaseExists      bool
	IsActive        bool
	EndDate         string
	FinalStatus     string
	Rating          float64
	TherapistID     int
	TherapistExists bool
}

// ReviewContext provides context for plan review guards.
type ReviewContext struct {
	CaseID           int
	CaseExists       bool
	SupervisorID     int
	CaseSupervisorID int
}

// RatingInRange reports whether r lies within [MinRating, MaxRating].
func RatingInRange(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// CanEvaluate evaluates whether a case can receive a clinical evaluation.
// Rules:
// - Case must exist and still be active
// - Case must have at least MinSessionsForEvaluation sessions
// - Rating must be within range
func CanEvaluate(ctx EvaluateContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if !ctx.IsActive {
		return GuardResult{
			Reason: fmt.Sprintf("case %d is closed", ctx.CaseID),
			Err:    caseerr.ErrCaseInactive,
		}
	}

	if ctx.SessionCount < MinSessionsForEvaluation {
		return GuardResult{
			Reason: fmt.Sprintf("evaluation requires at least %d sessions, case %d has %d",
				MinSessionsForEvaluation, ctx.CaseID, ctx.SessionCount),
			Err: caseerr.ErrEvaluationNotReady,
		}
	}

	if !RatingInRange(ctx.Rating) {
		return GuardResult{
			Reason: fmt.Sprintf("rating %.2f", ctx.Rating),
			Err:    caseerr.ErrInvalidRating,
		}
	}

	return GuardResult{Allowed: true}
}

// CanClose evaluates whether a case can be closed.
// Rules:
// - Case must exist and still be active
// - End date must be YYYY-MM-DD
// - Final status must be non-empty and not "Active"
// - Rating must be within range
// - Assigned therapist must resolve so the caseload can be released
func CanClose(ctx CloseContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if !ctx.IsActive {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrAlreadyClosed,
		}
	}

	if !calendar.IsValid(ctx.EndDate) {
		return GuardResult{
			Reason: fmt.Sprintf("end date %q", ctx.EndDate),
			Err:    caseerr.ErrInvalidDate,
		}
	}

	status := strings.TrimSpace(ctx.FinalStatus)
	if status == "" || strings.EqualFold(status, "active") {
		return GuardResult{
			Reason: fmt.Sprintf("final status %q", ctx.FinalStatus),
			Err:    caseerr.ErrInvalidFinalStatus,
		}
	}

	if !RatingInRange(ctx.Rating) {
		return GuardResult{
			Reason: fmt.Sprintf("rating %.2f", ctx.Rating),
			Err:    caseerr.ErrInvalidRating,
		}
	}

	if !ctx.TherapistExists {
		return GuardResult{
			Reason: fmt.Sprintf("therapist %d on case %d", ctx.TherapistID, ctx.CaseID),
			Err:    caseerr.ErrTherapistNotFound,
		}
	}

	return GuardResult{Allowed: true}
}

// CanReviewPlan evaluates whether a supervisor may review a case's plan.
// Rules:
// - Case must exist
// - Case must be under this supervisor
func CanReviewPlan(ctx ReviewContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if ctx.SupervisorID != ctx.CaseSupervisorID {
		return GuardResult{
			Reason: fmt.Sprintf("case %d is supervised by %d, not %d", ctx.CaseID, ctx.CaseSupervisorID, ctx.SupervisorID),
			Err:    caseerr.ErrNotAssigned,
		}
	}

	return GuardResult{Allowed: true}
}

// ReleaseCaseload returns the therapist counter after one case closes.
func ReleaseCaseload(current int) int {
	if current <= 0 {
		return 0
	}
	return current - 1
}
