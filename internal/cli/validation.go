package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/slt/internal/core/calendar"
	"github.com/example/slt/internal/ports/primary"
)

// parseID parses a positive numeric id argument.
func parseID(arg, entityType string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s id '%s'. Expected a positive number", entityType, arg)
	}
	return id, nil
}

// parseGoalSpec parses "description:target". The last colon separates the
// target so descriptions may contain colons.
func parseGoalSpec(s string) (primary.GoalSpec, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return primary.GoalSpec{}, fmt.Errorf("invalid goal '%s'. Expected format: description:target", s)
	}
	desc := strings.TrimSpace(s[:i])
	target, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return primary.GoalSpec{}, fmt.Errorf("invalid goal target in '%s': %w", s, err)
	}
	return primary.GoalSpec{Description: desc, TargetSessions: target}, nil
}

// resolveDate expands "today" and empty input to the current date. Anything
// else is passed through unchanged for the service to validate.
func resolveDate(input string) string {
	if d, err := calendar.Resolve(input, time.Now()); err == nil {
		return d
	}
	return input
}
