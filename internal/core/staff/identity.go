// Package staff resolves numeric staff logins to therapist or supervisor
// identities. Therapists occupy ids 1..T and supervisors T+1..T+S, where T and
// S are the current roster sizes.
package staff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/slt/internal/core/caseerr"
)

// Role is the kind of staff member.
type Role string

const (
	RoleTherapist  Role = "therapist"
	RoleSupervisor Role = "supervisor"
)

// Identity represents a resolved staff member.
type Identity struct {
	Role Role
	ID   int // id within the role's registry
}

// FullID renders the identity as "therapist-2" or "supervisor-1".
func (i Identity) FullID() string {
	return fmt.Sprintf("%s-%d", i.Role, i.ID)
}

// IsTherapist reports whether the identity is a therapist.
func (i Identity) IsTherapist() bool { return i.Role == RoleTherapist }

// IsSupervisor reports whether the identity is a supervisor.
func (i Identity) IsSupervisor() bool { return i.Role == RoleSupervisor }

// Identify maps a login number onto the combined roster.
func Identify(login, therapistCount, supervisorCount int) (Identity, error) {
	switch {
	case login >= 1 && login <= therapistCount:
		return Identity{Role: RoleTherapist, ID: login}, nil
	case login > therapistCount && login <= therapistCount+supervisorCount:
		return Identity{Role: RoleSupervisor, ID: login - therapistCount}, nil
	default:
		return Identity{}, fmt.Errorf("login %d (valid range 1-%d): %w",
			login, therapistCount+supervisorCount, caseerr.ErrStaffNotFound)
	}
}

// ParseFullID parses a string produced by Identity.FullID.
func ParseFullID(s string) (Identity, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Identity{}, fmt.Errorf("invalid staff id format: %s (expected therapist-N or supervisor-N)", s)
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil || id < 1 {
		return Identity{}, fmt.Errorf("invalid staff id format: %s (expected therapist-N or supervisor-N)", s)
	}

	switch Role(parts[0]) {
	case RoleTherapist, RoleSupervisor:
		return Identity{Role: Role(parts[0]), ID: id}, nil
	default:
		return Identity{}, fmt.Errorf("unknown staff role: %s (expected therapist or supervisor)", parts[0])
	}
}

// CheckTherapistAccess allows a therapist to act only on their own cases.
// Supervisors and anonymous callers are not restricted here.
func CheckTherapistAccess(actor *Identity, caseID, caseTherapistID int) error {
	if actor == nil || !actor.IsTherapist() || actor.ID == caseTherapistID {
		return nil
	}
	return fmt.Errorf("case %d is assigned to therapist %d: %w", caseID, caseTherapistID, caseerr.ErrNotAssigned)
}

// CheckSupervisorAccess allows a supervisor to act only on cases under their
// supervision. Therapists and anonymous callers are not restricted here.
func CheckSupervisorAccess(actor *Identity, caseID, caseSupervisorID int) error {
	if actor == nil || !actor.IsSupervisor() || actor.ID == caseSupervisorID {
		return nil
	}
	return fmt.Errorf("case %d is supervised by supervisor %d: %w", caseID, caseSupervisorID, caseerr.ErrNotAssigned)
}

// CheckEvaluatorAccess rejects therapists: evaluations are written by the
// supervising clinician. Anonymous callers act as administrators.
func CheckEvaluatorAccess(actor *Identity, caseID int) error {
	if actor == nil || !actor.IsTherapist() {
		return nil
	}
	return fmt.Errorf("therapist %d cannot evaluate case %d: %w", actor.ID, caseID, caseerr.ErrNotAssigned)
}
