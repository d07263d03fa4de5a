package primary

import "context"

// DirectoryService defines the primary port for the staff roster.
type DirectoryService interface {
	// ListTherapists lists therapists in registration order.
	ListTherapists(ctx context.Context) ([]*Therapist, error)

	// ListSupervisors lists supervisors in registration order.
	ListSupervisors(ctx context.Context) ([]*Supervisor, error)

	// Login resolves a numeric staff login to a therapist or supervisor.
	Login(ctx context.Context, login int) (*StaffIdentity, error)
}

// Therapist represents a therapist at the port boundary.
type Therapist struct {
	ID             int
	Login          int
	Name           string
	Specialization string
	Email          string
	CurrentCases   int
}

// Supervisor represents a supervisor at the port boundary.
type Supervisor struct {
	ID    int
	Login int
	Name  string
	Email string
}

// StaffIdentity is a resolved staff login.
type StaffIdentity struct {
	Login  int
	Role   string // therapist or supervisor
	ID     int
	Name   string
	FullID string // e.g. therapist-2, usable as --actor
}
