package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/slt/internal/ports/secondary"
)

// CaseEventRepository implements secondary.CaseEventRepository with SQLite.
type CaseEventRepository struct {
	db *sql.DB
}

// NewCaseEventRepository creates a new SQLite case event repository.
func NewCaseEventRepository(db *sql.DB) *CaseEventRepository {
	return &CaseEventRepository{db: db}
}

// Append persists a new event.
func (r *CaseEventRepository) Append(ctx context.Context, event *secondary.CaseEventRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO case_events (id, case_id, action, actor, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.CaseID, event.Action, event.Actor, event.Detail, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append case event: %w", err)
	}
	return nil
}

// ListByCase retrieves the events of one case, oldest first.
func (r *CaseEventRepository) ListByCase(ctx context.Context, caseID int) ([]*secondary.CaseEventRecord, error) {
	return r.List(ctx, secondary.CaseEventFilters{CaseID: caseID})
}

// List retrieves events matching the given filters, oldest first.
func (r *CaseEventRepository) List(ctx context.Context, filters secondary.CaseEventFilters) ([]*secondary.CaseEventRecord, error) {
	query := "SELECT id, case_id, action, actor, detail, created_at FROM case_events"
	var (
		conds []string
		args  []any
	)

	if filters.CaseID != 0 {
		conds = append(conds, "case_id = ?")
		args = append(args, filters.CaseID)
	}
	if filters.Action != "" {
		conds = append(conds, "action = ?")
		args = append(args, filters.Action)
	}
	if filters.Actor != "" {
		conds = append(conds, "actor = ?")
		args = append(args, filters.Actor)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at ASC, rowid ASC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list case events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.CaseEventRecord
	for rows.Next() {
		record := &secondary.CaseEventRecord{}
		if err := rows.Scan(&record.ID, &record.CaseID, &record.Action, &record.Actor, &record.Detail, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan case event: %w", err)
		}
		events = append(events, record)
	}
	return events, rows.Err()
}

// Ensure CaseEventRepository implements the interface
var _ secondary.CaseEventRepository = (*CaseEventRepository)(nil)
