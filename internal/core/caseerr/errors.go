// Package caseerr defines the error taxonomy shared by the case lifecycle engine.
// Every specific error unwraps to exactly one category, so callers can match on
// either level with errors.Is.
package caseerr

import "errors"

// Categories.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidState     = errors.New("invalid state")
	ErrIOFailure        = errors.New("io failure")
)

// Error is a specific lifecycle error that belongs to a category.
type Error struct {
	msg      string
	category error
}

func newError(msg string, category error) *Error {
	return &Error{msg: msg, category: category}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the category.
func (e *Error) Unwrap() error { return e.category }

// Category returns the category sentinel of the error.
func (e *Error) Category() error { return e.category }

// NotFound errors.
var (
	ErrInvalidCase          = newError("case not found", ErrNotFound)
	ErrGoalNotFound         = newError("goal not found", ErrNotFound)
	ErrUnknownTherapist     = newError("unknown therapist", ErrNotFound)
	ErrUnknownSupervisor    = newError("unknown supervisor", ErrNotFound)
	ErrTherapistNotFound    = newError("assigned therapist not found", ErrNotFound)
	ErrPatientNotFound      = newError("patient not found", ErrNotFound)
	ErrNoTherapistAvailable = newError("no therapist available", ErrNotFound)
	ErrStaffNotFound        = newError("no staff member with that id", ErrNotFound)
)

// CapacityExceeded errors.
var (
	ErrPatientCapacity         = newError("patient registry is full", ErrCapacityExceeded)
	ErrCaseCapacity            = newError("case registry is full", ErrCapacityExceeded)
	ErrTherapistCapacity       = newError("therapist registry is full", ErrCapacityExceeded)
	ErrSupervisorCapacity      = newError("supervisor registry is full", ErrCapacityExceeded)
	ErrGoalCapacityExceeded    = newError("goal limit exceeded", ErrCapacityExceeded)
	ErrSessionCapacityExceeded = newError("session limit reached", ErrCapacityExceeded)
)

// InvalidInput errors.
var (
	ErrInvalidDate        = newError("invalid date, expected YYYY-MM-DD", ErrInvalidInput)
	ErrInvalidRating      = newError("clinical rating must be between 0.0 and 5.0", ErrInvalidInput)
	ErrInvalidTarget      = newError("target sessions must be positive", ErrInvalidInput)
	ErrNoGoals            = newError("at least one goal is required", ErrInvalidInput)
	ErrInvalidFinalStatus = newError("final status must be a non-active status", ErrInvalidInput)
)

// InvalidState errors.
var (
	ErrCaseInactive       = newError("case is not active", ErrInvalidState)
	ErrEvaluationNotReady = newError("evaluation not ready", ErrInvalidState)
	ErrAlreadyClosed      = newError("case is already closed", ErrInvalidState)
	ErrNotAssigned        = newError("case is not assigned to this staff member", ErrInvalidState)
)

// IsNotFound reports whether err belongs to the NotFound category.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsCapacity reports whether err belongs to the CapacityExceeded category.
func IsCapacity(err error) bool { return errors.Is(err, ErrCapacityExceeded) }

// IsInvalidInput reports whether err belongs to the InvalidInput category.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsInvalidState reports whether err belongs to the InvalidState category.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }
