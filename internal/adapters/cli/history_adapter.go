package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/slt/internal/ports/primary"
)

// HistoryAdapter renders case event history.
type HistoryAdapter struct {
	service primary.LogService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.LogService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List displays events matching the filters, oldest first.
func (a *HistoryAdapter) List(ctx context.Context, filters primary.EventFilters) error {
	var (
		events []*primary.CaseEvent
		err    error
	)
	if filters.CaseID > 0 && filters.Action == "" && filters.Actor == "" && filters.Limit == 0 {
		events, err = a.service.History(ctx, filters.CaseID)
	} else {
		events, err = a.service.ListEvents(ctx, filters)
	}
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events found")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "TIME\tCASE\tACTION\tACTOR\tDETAIL")
	for _, e := range events {
		actor := e.Actor
		if actor == "" {
			actor = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", e.CreatedAt, e.CaseID, e.Action, actor, e.Detail)
	}
	w.Flush()
	return nil
}
