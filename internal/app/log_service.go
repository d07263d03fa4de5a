package app

import (
	"context"
	"fmt"

	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
)

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	eventRepo secondary.CaseEventRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(eventRepo secondary.CaseEventRepository) *LogServiceImpl {
	return &LogServiceImpl{
		eventRepo: eventRepo,
	}
}

// History lists the lifecycle events of a case, oldest first.
func (s *LogServiceImpl) History(ctx context.Context, caseID int) ([]*primary.CaseEvent, error) {
	records, err := s.eventRepo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case history: %w", err)
	}
	return s.recordsToEvents(records), nil
}

// ListEvents lists events across cases matching the filters.
func (s *LogServiceImpl) ListEvents(ctx context.Context, filters primary.EventFilters) ([]*primary.CaseEvent, error) {
	records, err := s.eventRepo.List(ctx, secondary.CaseEventFilters{
		CaseID: filters.CaseID,
		Action: filters.Action,
		Actor:  filters.Actor,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return s.recordsToEvents(records), nil
}

// Helper methods

func (s *LogServiceImpl) recordsToEvents(records []*secondary.CaseEventRecord) []*primary.CaseEvent {
	events := make([]*primary.CaseEvent, len(records))
	for i, r := range records {
		events[i] = &primary.CaseEvent{
			ID:        r.ID,
			CaseID:    r.CaseID,
			Action:    r.Action,
			Actor:     r.Actor,
			Detail:    r.Detail,
			CreatedAt: r.CreatedAt,
		}
	}
	return events
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
