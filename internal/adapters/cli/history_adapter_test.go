package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/slt/internal/ports/primary"
)

// mockLogService implements primary.LogService for testing
type mockLogService struct {
	events []*primary.CaseEvent

	historyCalls int
	listCalls    int
	lastFilters  primary.EventFilters
}

func (m *mockLogService) History(ctx context.Context, caseID int) ([]*primary.CaseEvent, error) {
	m.historyCalls++
	return m.events, nil
}

func (m *mockLogService) ListEvents(ctx context.Context, filters primary.EventFilters) ([]*primary.CaseEvent, error) {
	m.listCalls++
	m.lastFilters = filters
	return m.events, nil
}

func TestHistoryAdapter_List(t *testing.T) {
	tests := []struct {
		name        string
		filters     primary.EventFilters
		wantHistory int
		wantList    int
	}{
		{"single case uses history", primary.EventFilters{CaseID: 1}, 1, 0},
		{"filtered case uses list", primary.EventFilters{CaseID: 1, Action: "close"}, 0, 1},
		{"all cases uses list", primary.EventFilters{Limit: 10}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			service := &mockLogService{events: []*primary.CaseEvent{
				{ID: "e1", CaseID: 1, Action: "allocate", Detail: "patient 1 to therapist 1", CreatedAt: "2024-01-15T10:00:00.000000000Z"},
				{ID: "e2", CaseID: 1, Action: "add_goals", Actor: "therapist-1", Detail: "2 goals", CreatedAt: "2024-01-15T11:00:00.000000000Z"},
			}}
			adapter := NewHistoryAdapter(service, &out)

			if err := adapter.List(context.Background(), tt.filters); err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if service.historyCalls != tt.wantHistory || service.listCalls != tt.wantList {
				t.Errorf("calls = history %d list %d, want %d %d", service.historyCalls, service.listCalls, tt.wantHistory, tt.wantList)
			}

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			if len(lines) != 3 {
				t.Fatalf("expected header and 2 rows, got:\n%s", out.String())
			}
			if !strings.Contains(lines[1], " - ") {
				t.Errorf("anonymous actor should render as '-': %q", lines[1])
			}
			if !strings.Contains(lines[2], "therapist-1") {
				t.Errorf("expected actor in row: %q", lines[2])
			}
		})
	}
}

func TestHistoryAdapter_Empty(t *testing.T) {
	var out bytes.Buffer
	adapter := NewHistoryAdapter(&mockLogService{}, &out)

	if err := adapter.List(context.Background(), primary.EventFilters{CaseID: 5}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(out.String(), "No events found") {
		t.Errorf("expected empty message, got %q", out.String())
	}
}
