package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
)

func TestHistory(t *testing.T) {
	repo := &mockCaseEventRepository{events: []*secondary.CaseEventRecord{
		{ID: "a", CaseID: 1, Action: models.EventAllocate, CreatedAt: "2024-01-15T10:00:00Z"},
		{ID: "b", CaseID: 2, Action: models.EventAllocate, CreatedAt: "2024-01-15T10:01:00Z"},
		{ID: "c", CaseID: 1, Action: models.EventAddGoals, Actor: "therapist-1", Detail: "added goals 1-2"},
	}}
	service := NewLogService(repo)

	events, err := service.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 2 || events[0].ID != "a" || events[1].Actor != "therapist-1" {
		t.Errorf("unexpected history: %+v", events)
	}

	byAction, err := service.ListEvents(context.Background(), primary.EventFilters{Action: models.EventAllocate})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(byAction) != 2 {
		t.Errorf("expected 2 allocate events, got %d", len(byAction))
	}
}

func TestHistory_RepositoryError(t *testing.T) {
	repo := &mockCaseEventRepository{listErr: errors.New("disk gone")}
	service := NewLogService(repo)

	if _, err := service.History(context.Background(), 1); err == nil {
		t.Error("expected error")
	}
}
