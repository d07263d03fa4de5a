package secondary

import "context"

// LogWriter defines the interface for writing case history entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogEvent records one lifecycle action on a case.
	LogEvent(ctx context.Context, caseID int, action, detail string) error
}
