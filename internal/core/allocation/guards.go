// Package allocation contains the pure business logic for opening a new case.
// Guards are pure functions that evaluate preconditions without side effects.
package allocation

import (
	"fmt"

	"github.com/example/slt/internal/core/calendar"
	"github.com/example/slt/internal/core/caseerr"
)

// MaxPatients bounds the patient registry. Each patient gets exactly one case.
const MaxPatients = 100

// MaxCases bounds the case registry.
const MaxCases = MaxPatients

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

// AllocateContext provides context for allocation guards.
type AllocateContext struct {
	PatientCount     int
	CaseCount        int
	AdmissionDate    string
	AutoAllocate     bool
	TherapistID      int  // resolved therapist (auto) or requested id (manual)
	TherapistExists  bool // false with AutoAllocate means the registry is empty
	SupervisorID     int
	SupervisorExists bool
}

// TherapistLoad is the minimal therapist view used for load balancing.
type TherapistLoad struct {
	ID           int
	CurrentCases int
}

// CanAllocate evaluates whether a new case can be opened.
// Rules:
// - Patient and case registries must have room
// - Admission date must be YYYY-MM-DD
// - Auto: a therapist must be available; Manual: the therapist must exist
// - Supervisor must exist
func CanAllocate(ctx AllocateContext) GuardResult {
	if ctx.PatientCount >= MaxPatients {
		return GuardResult{
			Reason: fmt.Sprintf("maximum of %d patients reached", MaxPatients),
			Err:    caseerr.ErrPatientCapacity,
		}
	}

	if ctx.CaseCount >= MaxCases {
		return GuardResult{
			Reason: fmt.Sprintf("maximum of %d cases reached", MaxCases),
			Err:    caseerr.ErrCaseCapacity,
		}
	}

	if !calendar.IsValid(ctx.AdmissionDate) {
		return GuardResult{
			Reason: fmt.Sprintf("admission date %q", ctx.AdmissionDate),
			Err:    caseerr.ErrInvalidDate,
		}
	}

	if !ctx.TherapistExists {
		if ctx.AutoAllocate {
			return GuardResult{
				Reason: "auto-allocation found no therapists, try manual allocation",
				Err:    caseerr.ErrNoTherapistAvailable,
			}
		}
		return GuardResult{
			Reason: fmt.Sprintf("therapist %d", ctx.TherapistID),
			Err:    caseerr.ErrUnknownTherapist,
		}
	}

	if !ctx.SupervisorExists {
		return GuardResult{
			Reason: fmt.Sprintf("supervisor %d", ctx.SupervisorID),
			Err:    caseerr.ErrUnknownSupervisor,
		}
	}

	return GuardResult{Allowed: true}
}

// SelectLeastLoaded returns the index of the therapist with the fewest active
// cases, or -1 when loads is empty. The first of several equal loads wins.
func SelectLeastLoaded(loads []TherapistLoad) int {
	selected := -1
	for i, l := range loads {
		if selected == -1 || l.CurrentCases < loads[selected].CurrentCases {
			selected = i
		}
	}
	return selected
}
