package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/example/slt/internal/ctxutil"
	"github.com/example/slt/internal/ports/secondary"
)

// eventTimeLayout is fixed-width so created_at sorts lexically.
const eventTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// LogWriterAdapter implements secondary.LogWriter using CaseEventRepository.
type LogWriterAdapter struct {
	eventRepo secondary.CaseEventRepository
	now       func() time.Time
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(eventRepo secondary.CaseEventRepository) *LogWriterAdapter {
	return &LogWriterAdapter{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// LogEvent records one lifecycle action on a case, attributed to the actor
// carried in ctx.
func (w *LogWriterAdapter) LogEvent(ctx context.Context, caseID int, action, detail string) error {
	record := &secondary.CaseEventRecord{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		Action:    action,
		Actor:     ctxutil.ActorFromContext(ctx),
		Detail:    detail,
		CreatedAt: w.now().UTC().Format(eventTimeLayout),
	}
	return w.eventRepo.Append(ctx, record)
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
