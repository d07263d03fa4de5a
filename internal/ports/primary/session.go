package primary

import "context"

// SessionService defines the primary port for therapy session operations.
type SessionService interface {
	// RecordSession appends a session to an active case, optionally advancing
	// one goal.
	RecordSession(ctx context.Context, req RecordSessionRequest) (*Session, error)

	// ListSessions lists a case's sessions in recording order.
	ListSessions(ctx context.Context, caseID int) ([]*Session, error)
}

// RecordSessionRequest contains parameters for recording a session.
type RecordSessionRequest struct {
	CaseID       int
	Date         string // YYYY-MM-DD, "today" or empty for the current date
	Activities   string
	Observations string
	GoalNumber   int // 0 for no goal update; out-of-range numbers are ignored
}

// Session represents a therapy session at the port boundary.
type Session struct {
	Number             int
	PatientID          int
	TherapistID        int
	Date               string
	Activities         string
	Observations       string
	SupervisorFeedback string
	SupervisorReviewed bool
}
