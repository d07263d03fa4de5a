package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/slt/internal/ctxutil"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/roster"
	"github.com/example/slt/internal/store"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.LogWriter           = (*mockLogWriter)(nil)
	_ secondary.StateRepository     = (*mockStateRepository)(nil)
	_ secondary.CaseEventRepository = (*mockCaseEventRepository)(nil)
)

// loggedEvent is one call captured by mockLogWriter.
type loggedEvent struct {
	CaseID int
	Action string
	Detail string
	Actor  string
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	events []loggedEvent
	err    error
}

func (m *mockLogWriter) LogEvent(ctx context.Context, caseID int, action, detail string) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, loggedEvent{
		CaseID: caseID,
		Action: action,
		Detail: detail,
		Actor:  ctxutil.ActorFromContext(ctx),
	})
	return nil
}

func (m *mockLogWriter) actions() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Action
	}
	return out
}

// mockStateRepository implements secondary.StateRepository for testing.
type mockStateRepository struct {
	snapshot  *models.Snapshot
	loadErr   error
	saveErr   error
	saveCalls int
}

func (m *mockStateRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.snapshot == nil {
		return &models.Snapshot{}, nil
	}
	return m.snapshot, nil
}

func (m *mockStateRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshot = snapshot
	return nil
}

// mockCaseEventRepository implements secondary.CaseEventRepository for testing.
type mockCaseEventRepository struct {
	events  []*secondary.CaseEventRecord
	listErr error
}

func (m *mockCaseEventRepository) Append(ctx context.Context, event *secondary.CaseEventRecord) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockCaseEventRepository) ListByCase(ctx context.Context, caseID int) ([]*secondary.CaseEventRecord, error) {
	return m.List(ctx, secondary.CaseEventFilters{CaseID: caseID})
}

func (m *mockCaseEventRepository) List(ctx context.Context, filters secondary.CaseEventFilters) ([]*secondary.CaseEventRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.CaseEventRecord
	for _, e := range m.events {
		if filters.CaseID != 0 && e.CaseID != filters.CaseID {
			continue
		}
		if filters.Action != "" && e.Action != filters.Action {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// ============================================================================
// Fixtures
// ============================================================================

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// newTestRegistry returns a registry seeded with the default roster:
// three therapists and two supervisors.
func newTestRegistry(t *testing.T) *store.Registry {
	t.Helper()
	reg := store.New()
	r := roster.Default()
	for _, th := range r.Therapists {
		if _, err := reg.RegisterTherapist(th); err != nil {
			t.Fatalf("failed to seed therapist: %v", err)
		}
	}
	for _, sup := range r.Supervisors {
		if _, err := reg.RegisterSupervisor(sup); err != nil {
			t.Fatalf("failed to seed supervisor: %v", err)
		}
	}
	reg.MarkClean()
	return reg
}

// addTestCase opens an active case directly in the registry.
func addTestCase(t *testing.T, reg *store.Registry, therapistID, supervisorID int) *models.TherapyCase {
	t.Helper()
	p, err := reg.AddPatient(models.Patient{Name: fmt.Sprintf("Patient %d", reg.NextPatientID()), AdmissionDate: "2024-01-15"})
	if err != nil {
		t.Fatalf("failed to add patient: %v", err)
	}
	c, err := reg.AddCase(models.TherapyCase{
		PatientID:    p.ID,
		TherapistID:  therapistID,
		SupervisorID: supervisorID,
		IsActive:     true,
		StartDate:    p.AdmissionDate,
		Status:       models.CaseStatusActive,
	})
	if err != nil {
		t.Fatalf("failed to add case: %v", err)
	}
	if th := reg.FindTherapistByID(therapistID); th != nil {
		th.CurrentCases++
	}
	return c
}

// addTestSessions appends n sessions to a case.
func addTestSessions(c *models.TherapyCase, n int) {
	for i := 0; i < n; i++ {
		c.Sessions = append(c.Sessions, models.TherapySession{
			ID:          len(c.Sessions) + 1,
			PatientID:   c.PatientID,
			TherapistID: c.TherapistID,
			Date:        "2024-02-01",
		})
	}
}

func therapistLoads(reg *store.Registry) []int {
	var loads []int
	for _, th := range reg.ListTherapists() {
		loads = append(loads, th.CurrentCases)
	}
	return loads
}

func asActor(actorID string) context.Context {
	return ctxutil.WithActorID(context.Background(), actorID)
}
