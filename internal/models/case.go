package models

import "github.com/example/slt/internal/core/goal"

// CaseStatusActive is the status of every open case.
const CaseStatusActive = "Active"

// TherapyGoal is a measurable target owned by one case.
type TherapyGoal struct {
	ID             int // 1-based within the case
	Description    string
	TargetSessions int
	Achieved       int
}

// Status is derived from progress, never stored.
func (g TherapyGoal) Status() goal.Status {
	return goal.Derive(g.Achieved, g.TargetSessions)
}

// TherapySession is one clinical encounter. Sessions are append-only.
type TherapySession struct {
	ID                 int // 1-based within the case
	PatientID          int
	TherapistID        int
	Date               string
	Activities         string
	Observations       string
	SupervisorFeedback string
	SupervisorReviewed bool
}

// TherapyCase links one patient, one therapist and one supervisor (by id) and
// owns its goals and sessions. EndDate is non-empty exactly when IsActive is false.
type TherapyCase struct {
	ID             int
	PatientID      int
	TherapistID    int
	SupervisorID   int
	Goals          []TherapyGoal
	Sessions       []TherapySession
	IsActive       bool
	ClinicalRating float64
	StartDate      string
	EndDate        string
	Status         string
}

// LastSession returns the most recent session, or nil when none exist.
func (c *TherapyCase) LastSession() *TherapySession {
	if len(c.Sessions) == 0 {
		return nil
	}
	return &c.Sessions[len(c.Sessions)-1]
}

// Goal returns goal number n (1-based), or nil when out of range.
func (c *TherapyCase) Goal(n int) *TherapyGoal {
	if n < 1 || n > len(c.Goals) {
		return nil
	}
	return &c.Goals[n-1]
}

// Case event actions.
const (
	EventAllocate      = "allocate"
	EventAddGoals      = "add_goals"
	EventEditGoal      = "edit_goal"
	EventRecordSession = "record_session"
	EventEvaluate      = "evaluate"
	EventClose         = "close"
	EventReviewPlan    = "review_plan"
)

// Snapshot is the full registry state exchanged with persistence, in
// insertion order.
type Snapshot struct {
	Patients    []*Patient
	Therapists  []*Therapist
	Supervisors []*Supervisor
	Cases       []*TherapyCase
}
