package primary

import "context"

// EvaluationService defines the primary port for supervisor evaluation,
// plan review and case closure.
type EvaluationService interface {
	// EvaluateCase attaches supervisor feedback to the latest session and
	// sets the clinical rating. The case stays active.
	EvaluateCase(ctx context.Context, req EvaluateCaseRequest) error

	// CloseCase ends a case and releases the therapist's caseload.
	CloseCase(ctx context.Context, req CloseCaseRequest) error

	// ReviewPlan records a supervisor's decision on a case's plan.
	ReviewPlan(ctx context.Context, req ReviewPlanRequest) error
}

// EvaluateCaseRequest contains parameters for a clinical evaluation.
type EvaluateCaseRequest struct {
	CaseID   int
	Feedback string
	Rating   float64
}

// CloseCaseRequest contains parameters for closing a case.
type CloseCaseRequest struct {
	CaseID      int
	EndDate     string
	FinalStatus string // e.g. Completed, Discontinued
	FinalRating float64
}

// ReviewPlanRequest contains parameters for a plan review.
type ReviewPlanRequest struct {
	CaseID       int
	SupervisorID int
	Approved     bool
	Feedback     string
}
