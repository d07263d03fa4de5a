// Package session contains the pure business logic for recording therapy sessions.
package session

import (
	"fmt"

	"github.com/example/slt/internal/core/calendar"
	"github.com/example/slt/internal/core/caseerr"
)

// MaxSessions bounds the sessions recorded on one case.
const MaxSessions = 50

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

// RecordContext provides context for session recording guards.
// Date is the resolved date (the "today" sentinel already replaced).
type RecordContext struct {
	CaseID       int
	CaseExists   bool
	IsActive     bool
	SessionCount int
	Date         string
}

// CanRecordSession evaluates whether a session can be appended.
// Rules:
// - Case must exist and be active
// - Case must have fewer than MaxSessions sessions
// - Date must be YYYY-MM-DD
func CanRecordSession(ctx RecordContext) GuardResult {
	if !ctx.CaseExists {
		return GuardResult{
			Reason: fmt.Sprintf("case %d", ctx.CaseID),
			Err:    caseerr.ErrInvalidCase,
		}
	}

	if !ctx.IsActive {
		return GuardResult{
			Reason: fmt.Sprintf("cannot record sessions on case %d", ctx.CaseID),
			Err:    caseerr.ErrCaseInactive,
		}
	}

	if ctx.SessionCount >= MaxSessions {
		return GuardResult{
			Reason: fmt.Sprintf("case %d already has %d sessions", ctx.CaseID, ctx.SessionCount),
			Err:    caseerr.ErrSessionCapacityExceeded,
		}
	}

	if !calendar.IsValid(ctx.Date) {
		return GuardResult{
			Reason: fmt.Sprintf("session date %q", ctx.Date),
			Err:    caseerr.ErrInvalidDate,
		}
	}

	return GuardResult{Allowed: true}
}

// GoalUpdateApplies reports whether a session should advance goal number n.
// Out-of-range numbers, including 0 for "no update", are ignored silently.
func GoalUpdateApplies(n, goalCount int) bool {
	return n >= 1 && n <= goalCount
}
