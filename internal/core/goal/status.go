// Package goal contains the pure business logic for therapy goals.
// A goal's status is never stored; it is derived from progress every time.
package goal

// Status represents the derived progress state of a goal.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Derive computes the status from achieved sessions and the target:
// achieved == 0 is NotStarted, achieved >= target is Completed, anything in
// between is InProgress.
func Derive(achieved, target int) Status {
	switch {
	case achieved <= 0:
		return StatusNotStarted
	case achieved >= target:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// Rank orders statuses so that NotStarted < InProgress < Completed.
func (s Status) Rank() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// MergeEdit applies a partial edit. An empty description or a non-positive
// target keeps the current value.
func MergeEdit(currentDesc string, currentTarget int, newDesc string, newTarget int) (string, int) {
	desc, target := currentDesc, currentTarget
	if newDesc != "" {
		desc = newDesc
	}
	if newTarget > 0 {
		target = newTarget
	}
	return desc, target
}
