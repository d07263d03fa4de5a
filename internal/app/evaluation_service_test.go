package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
)

func TestEvaluateCase_SessionGate(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		wantErr  error
	}{
		{"nine sessions", 9, caseerr.ErrEvaluationNotReady},
		{"ten sessions", 10, nil},
		{"eleven sessions", 11, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			c := addTestCase(t, reg, 1, 1)
			addTestSessions(c, tt.sessions)
			service := NewEvaluationService(reg, &mockLogWriter{}, testLogger())

			err := service.EvaluateCase(context.Background(), primary.EvaluateCaseRequest{
				CaseID:   c.ID,
				Feedback: "Steady progress",
				Rating:   4.5,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if c.ClinicalRating != 0 {
					t.Error("rating must not change on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			last := c.Sessions[len(c.Sessions)-1]
			if !last.SupervisorReviewed || last.SupervisorFeedback != "Steady progress" {
				t.Errorf("last session not reviewed: %+v", last)
			}
			for _, s := range c.Sessions[:len(c.Sessions)-1] {
				if s.SupervisorReviewed || s.SupervisorFeedback != "" {
					t.Errorf("session %d should be untouched", s.ID)
				}
			}
			if c.ClinicalRating != 4.5 || !c.IsActive || c.Status != models.CaseStatusActive {
				t.Errorf("unexpected case after evaluation: %+v", c)
			}
		})
	}
}

func TestEvaluateCase_RatingRange(t *testing.T) {
	for _, rating := range []float64{-0.1, 5.1} {
		reg := newTestRegistry(t)
		c := addTestCase(t, reg, 1, 1)
		addTestSessions(c, 10)
		service := NewEvaluationService(reg, nil, testLogger())

		err := service.EvaluateCase(context.Background(), primary.EvaluateCaseRequest{CaseID: c.ID, Rating: rating})
		if !errors.Is(err, caseerr.ErrInvalidRating) {
			t.Errorf("rating %.1f: expected ErrInvalidRating, got %v", rating, err)
		}
		if c.LastSession().SupervisorReviewed {
			t.Error("session reviewed despite failure")
		}
	}
}

func TestEvaluateCase_ClosedCase(t *testing.T) {
	reg := newTestRegistry(t)
	c := addTestCase(t, reg, 1, 1)
	addTestSessions(c, 10)
	logWriter := &mockLogWriter{}
	service := NewEvaluationService(reg, logWriter, testLogger())
	ctx := context.Background()

	if err := service.EvaluateCase(ctx, primary.EvaluateCaseRequest{CaseID: c.ID, Feedback: "On track", Rating: 3.0}); err != nil {
		t.Fatalf("EvaluateCase failed: %v", err)
	}
	if err := service.CloseCase(ctx, primary.CloseCaseRequest{
		CaseID:      c.ID,
		EndDate:     "2024-06-30",
		FinalStatus: "Completed",
		FinalRating: 4.0,
	}); err != nil {
		t.Fatalf("CloseCase failed: %v", err)
	}

	err := service.EvaluateCase(ctx, primary.EvaluateCaseRequest{CaseID: c.ID, Feedback: "late", Rating: 1.0})
	if !errors.Is(err, caseerr.ErrCaseInactive) {
		t.Fatalf("expected ErrCaseInactive, got %v", err)
	}
	if c.ClinicalRating != 4.0 {
		t.Errorf("final rating overwritten: %.1f", c.ClinicalRating)
	}
	if got := c.LastSession().SupervisorFeedback; got != "On track" {
		t.Errorf("feedback overwritten: %q", got)
	}
	if got := logWriter.actions(); !reflect.DeepEqual(got, []string{models.EventEvaluate, models.EventClose}) {
		t.Errorf("events = %v", got)
	}
}

func TestEvaluateCase_ActorRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		wantErr error
	}{
		{"assigned therapist", "therapist-1", caseerr.ErrNotAssigned},
		{"other supervisor", "supervisor-2", caseerr.ErrNotAssigned},
		{"case supervisor", "supervisor-1", nil},
		{"anonymous", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			c := addTestCase(t, reg, 1, 1)
			addTestSessions(c, 10)
			service := NewEvaluationService(reg, nil, testLogger())

			err := service.EvaluateCase(asActor(tt.actor), primary.EvaluateCaseRequest{CaseID: c.ID, Feedback: "Good", Rating: 4})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if c.LastSession().SupervisorReviewed || c.ClinicalRating != 0 {
					t.Error("case changed despite rejection")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !c.LastSession().SupervisorReviewed {
				t.Error("last session not reviewed")
			}
		})
	}
}

func TestCloseCase(t *testing.T) {
	reg := newTestRegistry(t)
	c := addTestCase(t, reg, 2, 1)
	addTestCase(t, reg, 2, 1)
	logWriter := &mockLogWriter{}
	service := NewEvaluationService(reg, logWriter, testLogger())

	err := service.CloseCase(context.Background(), primary.CloseCaseRequest{
		CaseID:      c.ID,
		EndDate:     "2024-06-30",
		FinalStatus: "Completed",
		FinalRating: 4.0,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.IsActive || c.EndDate != "2024-06-30" || c.Status != "Completed" || c.ClinicalRating != 4.0 {
		t.Errorf("unexpected closed case: %+v", c)
	}
	if got := therapistLoads(reg); !reflect.DeepEqual(got, []int{0, 1, 0}) {
		t.Errorf("loads = %v, want [0 1 0]", got)
	}

	// Second close fails and leaves the first closure intact
	closed := *c
	err = service.CloseCase(context.Background(), primary.CloseCaseRequest{
		CaseID:      c.ID,
		EndDate:     "2024-07-01",
		FinalStatus: "Discontinued",
		FinalRating: 1.0,
	})
	if !errors.Is(err, caseerr.ErrAlreadyClosed) {
		t.Fatalf("expected ErrAlreadyClosed, got %v", err)
	}
	if c.EndDate != closed.EndDate || c.Status != closed.Status || c.ClinicalRating != closed.ClinicalRating {
		t.Errorf("case changed by second close: %+v", c)
	}
	if got := therapistLoads(reg); !reflect.DeepEqual(got, []int{0, 1, 0}) {
		t.Errorf("loads changed by second close: %v", got)
	}
	if got := logWriter.actions(); !reflect.DeepEqual(got, []string{models.EventClose}) {
		t.Errorf("events = %v", got)
	}
}

func TestCloseCase_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.CloseCaseRequest
		setup   func(*models.TherapyCase)
		wantErr error
	}{
		{
			name:    "bad end date",
			req:     primary.CloseCaseRequest{EndDate: "30-06-2024", FinalStatus: "Completed"},
			wantErr: caseerr.ErrInvalidDate,
		},
		{
			name:    "empty final status",
			req:     primary.CloseCaseRequest{EndDate: "2024-06-30", FinalStatus: " "},
			wantErr: caseerr.ErrInvalidFinalStatus,
		},
		{
			name:    "active final status",
			req:     primary.CloseCaseRequest{EndDate: "2024-06-30", FinalStatus: "active"},
			wantErr: caseerr.ErrInvalidFinalStatus,
		},
		{
			name:    "rating too high",
			req:     primary.CloseCaseRequest{EndDate: "2024-06-30", FinalStatus: "Completed", FinalRating: 7},
			wantErr: caseerr.ErrInvalidRating,
		},
		{
			name:    "assigned therapist missing",
			req:     primary.CloseCaseRequest{EndDate: "2024-06-30", FinalStatus: "Completed"},
			setup:   func(c *models.TherapyCase) { c.TherapistID = 40 },
			wantErr: caseerr.ErrTherapistNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			c := addTestCase(t, reg, 1, 1)
			if tt.setup != nil {
				tt.setup(c)
			}
			service := NewEvaluationService(reg, nil, testLogger())
			tt.req.CaseID = c.ID

			err := service.CloseCase(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !c.IsActive || c.EndDate != "" || c.Status != models.CaseStatusActive {
				t.Errorf("case mutated on failure: %+v", c)
			}
			if reg.FindTherapistByID(1).CurrentCases != 1 {
				t.Error("caseload changed on failure")
			}
		})
	}
}

func TestCloseCase_CaseloadFloor(t *testing.T) {
	reg := newTestRegistry(t)
	c := addTestCase(t, reg, 1, 1)
	reg.FindTherapistByID(1).CurrentCases = 0
	service := NewEvaluationService(reg, nil, testLogger())

	err := service.CloseCase(context.Background(), primary.CloseCaseRequest{CaseID: c.ID, EndDate: "2024-06-30", FinalStatus: "Discontinued"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reg.FindTherapistByID(1).CurrentCases != 0 {
		t.Error("caseload must not go below zero")
	}
}

func TestReviewPlan(t *testing.T) {
	reg := newTestRegistry(t)
	c := addTestCase(t, reg, 1, 2)
	reg.MarkClean()
	logWriter := &mockLogWriter{}
	service := NewEvaluationService(reg, logWriter, testLogger())

	err := service.ReviewPlan(asActor("supervisor-2"), primary.ReviewPlanRequest{CaseID: c.ID, Approved: true, Feedback: "Looks good"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(logWriter.events) != 1 {
		t.Fatalf("expected one event, got %d", len(logWriter.events))
	}
	ev := logWriter.events[0]
	if ev.Action != models.EventReviewPlan || ev.Actor != "supervisor-2" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if reg.Dirty() {
		t.Error("plan review must not change case state")
	}

	err = service.ReviewPlan(context.Background(), primary.ReviewPlanRequest{CaseID: c.ID, SupervisorID: 1})
	if !errors.Is(err, caseerr.ErrNotAssigned) {
		t.Errorf("expected ErrNotAssigned, got %v", err)
	}
}
