package primary

import "context"

// CaseQueryService defines the primary port for read-only case queries.
type CaseQueryService interface {
	// GetCase retrieves the full view of one case.
	GetCase(ctx context.Context, caseID int) (*Case, error)

	// SearchCases lists cases matching the filters in id order.
	SearchCases(ctx context.Context, filters CaseFilters) ([]*Case, error)
}

// CaseFilters contains filter options for querying cases.
// Zero values do not filter. Status matches case-insensitively.
type CaseFilters struct {
	PatientID    int
	TherapistID  int
	SupervisorID int
	Status       string
	ActiveOnly   bool
}

// Case represents a therapy case at the port boundary.
type Case struct {
	ID             int
	PatientID      int
	PatientName    string
	Diagnosis      string
	TherapistID    int
	TherapistName  string
	SupervisorID   int
	SupervisorName string
	Status         string
	IsActive       bool
	ClinicalRating float64
	StartDate      string
	EndDate        string
	Goals          []*Goal
	Sessions       []*Session
}

// SessionCount returns the number of recorded sessions.
func (c *Case) SessionCount() int { return len(c.Sessions) }
