package app

import (
	"context"

	"github.com/example/slt/internal/core/staff"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/store"
)

// DirectoryServiceImpl implements the DirectoryService interface.
type DirectoryServiceImpl struct {
	registry *store.Registry
}

// NewDirectoryService creates a new DirectoryService with injected dependencies.
func NewDirectoryService(registry *store.Registry) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{registry: registry}
}

// ListTherapists lists therapists in registration order.
func (s *DirectoryServiceImpl) ListTherapists(ctx context.Context) ([]*primary.Therapist, error) {
	therapists := s.registry.ListTherapists()
	out := make([]*primary.Therapist, len(therapists))
	for i, t := range therapists {
		out[i] = therapistToPort(t)
	}
	return out, nil
}

// ListSupervisors lists supervisors in registration order.
func (s *DirectoryServiceImpl) ListSupervisors(ctx context.Context) ([]*primary.Supervisor, error) {
	supervisors := s.registry.ListSupervisors()
	out := make([]*primary.Supervisor, len(supervisors))
	for i, sup := range supervisors {
		out[i] = supervisorToPort(s.registry, sup)
	}
	return out, nil
}

// Login resolves a numeric login against the combined roster.
func (s *DirectoryServiceImpl) Login(ctx context.Context, login int) (*primary.StaffIdentity, error) {
	id, err := staff.Identify(login, s.registry.TherapistCount(), s.registry.SupervisorCount())
	if err != nil {
		return nil, err
	}

	identity := &primary.StaffIdentity{
		Login:  login,
		Role:   string(id.Role),
		ID:     id.ID,
		FullID: id.FullID(),
	}
	if id.IsTherapist() {
		if t := s.registry.FindTherapistByID(id.ID); t != nil {
			identity.Name = t.Name
		}
	} else if sup := s.registry.FindSupervisorByID(id.ID); sup != nil {
		identity.Name = sup.Name
	}
	return identity, nil
}

// Ensure DirectoryServiceImpl implements the interface
var _ primary.DirectoryService = (*DirectoryServiceImpl)(nil)
