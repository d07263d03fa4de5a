// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/slt/internal/models"
)

// StateRepository defines the secondary port for the whole-store load/save
// boundary. The format behind it is opaque to the lifecycle engine.
type StateRepository interface {
	// Load returns the persisted registries in insertion order.
	// An absent store yields an empty snapshot and no error.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save replaces the persisted registries with the snapshot.
	// A failed save leaves the previous state intact.
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// CaseEventRepository defines the secondary port for case history persistence.
type CaseEventRepository interface {
	// Append persists a new event.
	Append(ctx context.Context, event *CaseEventRecord) error

	// ListByCase retrieves the events of one case, oldest first.
	ListByCase(ctx context.Context, caseID int) ([]*CaseEventRecord, error)

	// List retrieves events matching the given filters, oldest first.
	List(ctx context.Context, filters CaseEventFilters) ([]*CaseEventRecord, error)
}

// CaseEventRecord represents a case event as stored in persistence.
type CaseEventRecord struct {
	ID        string
	CaseID    int
	Action    string
	Actor     string
	Detail    string
	CreatedAt string // RFC3339 UTC, fixed nanosecond precision
}

// CaseEventFilters contains filter options for querying case events.
type CaseEventFilters struct {
	CaseID int // 0 means all cases
	Action string
	Actor  string
	Limit  int
}
