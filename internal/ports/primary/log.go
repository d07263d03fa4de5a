package primary

import "context"

// LogService defines the primary port for case history.
type LogService interface {
	// History lists the lifecycle events of a case, oldest first.
	History(ctx context.Context, caseID int) ([]*CaseEvent, error)

	// ListEvents lists events across cases matching the filters.
	ListEvents(ctx context.Context, filters EventFilters) ([]*CaseEvent, error)
}

// CaseEvent represents a case history entry at the port boundary.
type CaseEvent struct {
	ID        string
	CaseID    int
	Action    string
	Actor     string
	Detail    string
	CreatedAt string
}

// EventFilters contains filter options for querying case history.
type EventFilters struct {
	CaseID int
	Action string
	Actor  string
	Limit  int
}
