package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/slt/internal/core/staff"
	"github.com/example/slt/internal/ctxutil"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/store"
)

// actorIdentity returns the staff member acting in ctx, or nil when the
// caller is anonymous or the actor id is not a staff id.
func actorIdentity(ctx context.Context) *staff.Identity {
	actorID := ctxutil.ActorFromContext(ctx)
	if actorID == "" {
		return nil
	}
	id, err := staff.ParseFullID(actorID)
	if err != nil {
		return nil
	}
	return &id
}

// checkCaseAccess restricts therapists and supervisors to their own cases.
func checkCaseAccess(ctx context.Context, c *models.TherapyCase) error {
	actor := actorIdentity(ctx)
	if err := staff.CheckTherapistAccess(actor, c.ID, c.TherapistID); err != nil {
		return err
	}
	return staff.CheckSupervisorAccess(actor, c.ID, c.SupervisorID)
}

// recordEvent appends to the case history. A failed write is logged and does
// not undo the lifecycle mutation that preceded it.
func recordEvent(ctx context.Context, w secondary.LogWriter, logger zerolog.Logger, caseID int, action, detail string) {
	if w == nil {
		return
	}
	if err := w.LogEvent(ctx, caseID, action, detail); err != nil {
		logger.Warn().Err(err).Int("case_id", caseID).Str("action", action).Msg("failed to record case event")
	}
}

func goalToPort(n int, g models.TherapyGoal) *primary.Goal {
	return &primary.Goal{
		Number:         n,
		Description:    g.Description,
		TargetSessions: g.TargetSessions,
		Achieved:       g.Achieved,
		Status:         string(g.Status()),
	}
}

func goalsToPort(goals []models.TherapyGoal) []*primary.Goal {
	out := make([]*primary.Goal, len(goals))
	for i, g := range goals {
		out[i] = goalToPort(i+1, g)
	}
	return out
}

func sessionToPort(s models.TherapySession) *primary.Session {
	return &primary.Session{
		Number:             s.ID,
		PatientID:          s.PatientID,
		TherapistID:        s.TherapistID,
		Date:               s.Date,
		Activities:         s.Activities,
		Observations:       s.Observations,
		SupervisorFeedback: s.SupervisorFeedback,
		SupervisorReviewed: s.SupervisorReviewed,
	}
}

func sessionsToPort(sessions []models.TherapySession) []*primary.Session {
	out := make([]*primary.Session, len(sessions))
	for i, s := range sessions {
		out[i] = sessionToPort(s)
	}
	return out
}

// caseToPort builds the port view of a case, resolving participant names.
func caseToPort(reg *store.Registry, c *models.TherapyCase) *primary.Case {
	view := &primary.Case{
		ID:             c.ID,
		PatientID:      c.PatientID,
		TherapistID:    c.TherapistID,
		SupervisorID:   c.SupervisorID,
		Status:         c.Status,
		IsActive:       c.IsActive,
		ClinicalRating: c.ClinicalRating,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Goals:          goalsToPort(c.Goals),
		Sessions:       sessionsToPort(c.Sessions),
	}
	if p := reg.FindPatientByID(c.PatientID); p != nil {
		view.PatientName = p.Name
		view.Diagnosis = p.Diagnosis
	}
	if t := reg.FindTherapistByID(c.TherapistID); t != nil {
		view.TherapistName = t.Name
	}
	if s := reg.FindSupervisorByID(c.SupervisorID); s != nil {
		view.SupervisorName = s.Name
	}
	return view
}

func therapistToPort(t *models.Therapist) *primary.Therapist {
	return &primary.Therapist{
		ID:             t.ID,
		Login:          t.ID,
		Name:           t.Name,
		Specialization: t.Specialization,
		Email:          t.Email,
		CurrentCases:   t.CurrentCases,
	}
}

func supervisorToPort(reg *store.Registry, s *models.Supervisor) *primary.Supervisor {
	return &primary.Supervisor{
		ID:    s.ID,
		Login: reg.TherapistCount() + s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
}

// normalizeGender reduces a gender entry to its upper-cased first letter.
func normalizeGender(g string) string {
	g = strings.TrimSpace(g)
	if g == "" {
		return ""
	}
	return strings.ToUpper(g[:1])
}
