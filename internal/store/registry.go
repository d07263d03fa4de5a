// Package store holds the in-memory registries of patients, therapists,
// supervisors and cases. The Registry is built from a persistence snapshot at
// startup and handed back to persistence when it is flushed.
package store

import (
	"fmt"

	"github.com/example/slt/internal/core/allocation"
	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/models"
)

// Registry bounds.
const (
	MaxPatients    = allocation.MaxPatients
	MaxTherapists  = 50
	MaxSupervisors = 20
	MaxCases       = allocation.MaxCases
)

// Registry is the Directory Store plus the case table. Lookups are linear
// scans by id; ids are assigned sequentially so insertion order is id order.
type Registry struct {
	patients    []*models.Patient
	therapists  []*models.Therapist
	supervisors []*models.Supervisor
	cases       []*models.TherapyCase
	dirty       bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// FromSnapshot builds a registry from persisted state.
func FromSnapshot(s *models.Snapshot) *Registry {
	r := New()
	if s == nil {
		return r
	}
	r.patients = append(r.patients, s.Patients...)
	r.therapists = append(r.therapists, s.Therapists...)
	r.supervisors = append(r.supervisors, s.Supervisors...)
	r.cases = append(r.cases, s.Cases...)
	return r
}

// Snapshot exposes the current state for persistence.
func (r *Registry) Snapshot() *models.Snapshot {
	return &models.Snapshot{
		Patients:    append([]*models.Patient(nil), r.patients...),
		Therapists:  append([]*models.Therapist(nil), r.therapists...),
		Supervisors: append([]*models.Supervisor(nil), r.supervisors...),
		Cases:       append([]*models.TherapyCase(nil), r.cases...),
	}
}

// Touch marks the registry as changed since the last flush.
func (r *Registry) Touch() { r.dirty = true }

// Dirty reports whether the registry changed since the last flush.
func (r *Registry) Dirty() bool { return r.dirty }

// MarkClean is called after a successful flush.
func (r *Registry) MarkClean() { r.dirty = false }

// RegisterTherapist adds a therapist to the roster and assigns the next id.
func (r *Registry) RegisterTherapist(t models.Therapist) (*models.Therapist, error) {
	if len(r.therapists) >= MaxTherapists {
		return nil, fmt.Errorf("maximum of %d therapists: %w", MaxTherapists, caseerr.ErrTherapistCapacity)
	}
	t.ID = len(r.therapists) + 1
	t.CurrentCases = 0
	stored := &t
	r.therapists = append(r.therapists, stored)
	r.dirty = true
	return stored, nil
}

// RegisterSupervisor adds a supervisor to the roster and assigns the next id.
func (r *Registry) RegisterSupervisor(s models.Supervisor) (*models.Supervisor, error) {
	if len(r.supervisors) >= MaxSupervisors {
		return nil, fmt.Errorf("maximum of %d supervisors: %w", MaxSupervisors, caseerr.ErrSupervisorCapacity)
	}
	s.ID = len(r.supervisors) + 1
	stored := &s
	r.supervisors = append(r.supervisors, stored)
	r.dirty = true
	return stored, nil
}

// AddPatient stores a patient with the next sequential id.
func (r *Registry) AddPatient(p models.Patient) (*models.Patient, error) {
	if len(r.patients) >= MaxPatients {
		return nil, fmt.Errorf("maximum of %d patients: %w", MaxPatients, caseerr.ErrPatientCapacity)
	}
	p.ID = r.NextPatientID()
	stored := &p
	r.patients = append(r.patients, stored)
	r.dirty = true
	return stored, nil
}

// AddCase stores a case with the next sequential id.
func (r *Registry) AddCase(c models.TherapyCase) (*models.TherapyCase, error) {
	if len(r.cases) >= MaxCases {
		return nil, fmt.Errorf("maximum of %d cases: %w", MaxCases, caseerr.ErrCaseCapacity)
	}
	c.ID = r.NextCaseID()
	stored := &c
	r.cases = append(r.cases, stored)
	r.dirty = true
	return stored, nil
}

// NextPatientID returns the id the next patient will receive.
func (r *Registry) NextPatientID() int { return len(r.patients) + 1 }

// NextCaseID returns the id the next case will receive.
func (r *Registry) NextCaseID() int { return len(r.cases) + 1 }

// PatientCount returns the number of registered patients.
func (r *Registry) PatientCount() int { return len(r.patients) }

// CaseCount returns the number of stored cases.
func (r *Registry) CaseCount() int { return len(r.cases) }

// TherapistCount returns the number of registered therapists.
func (r *Registry) TherapistCount() int { return len(r.therapists) }

// SupervisorCount returns the number of registered supervisors.
func (r *Registry) SupervisorCount() int { return len(r.supervisors) }

// FindTherapistByID returns the therapist with id, or nil.
func (r *Registry) FindTherapistByID(id int) *models.Therapist {
	for _, t := range r.therapists {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindSupervisorByID returns the supervisor with id, or nil.
func (r *Registry) FindSupervisorByID(id int) *models.Supervisor {
	for _, s := range r.supervisors {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FindPatientByID returns the patient with id, or nil.
func (r *Registry) FindPatientByID(id int) *models.Patient {
	for _, p := range r.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindCaseByID returns the case with id, or nil.
func (r *Registry) FindCaseByID(id int) *models.TherapyCase {
	for _, c := range r.cases {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ListTherapists returns therapists in registration order.
func (r *Registry) ListTherapists() []*models.Therapist {
	return append([]*models.Therapist(nil), r.therapists...)
}

// ListSupervisors returns supervisors in registration order.
func (r *Registry) ListSupervisors() []*models.Supervisor {
	return append([]*models.Supervisor(nil), r.supervisors...)
}

// Cases returns cases in insertion order.
func (r *Registry) Cases() []*models.TherapyCase {
	return append([]*models.TherapyCase(nil), r.cases...)
}

// LeastLoadedTherapist returns the therapist with the fewest active cases;
// the earliest registered wins ties. Returns nil for an empty roster.
func (r *Registry) LeastLoadedTherapist() *models.Therapist {
	loads := make([]allocation.TherapistLoad, len(r.therapists))
	for i, t := range r.therapists {
		loads[i] = allocation.TherapistLoad{ID: t.ID, CurrentCases: t.CurrentCases}
	}
	idx := allocation.SelectLeastLoaded(loads)
	if idx < 0 {
		return nil
	}
	return r.therapists[idx]
}
