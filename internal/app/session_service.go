package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/slt/internal/core/calendar"
	"github.com/example/slt/internal/core/caseerr"
	coresession "github.com/example/slt/internal/core/session"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/store"
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	registry  *store.Registry
	logWriter secondary.LogWriter
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(registry *store.Registry, logWriter secondary.LogWriter, logger zerolog.Logger) *SessionServiceImpl {
	return &SessionServiceImpl{
		registry:  registry,
		logWriter: logWriter,
		logger:    logger.With().Str("component", "session").Logger(),
		now:       time.Now,
	}
}

// RecordSession appends a session to an active case.
func (s *SessionServiceImpl) RecordSession(ctx context.Context, req primary.RecordSessionRequest) (*primary.Session, error) {
	c := s.registry.FindCaseByID(req.CaseID)
	if c != nil {
		if err := checkCaseAccess(ctx, c); err != nil {
			return nil, err
		}
	}

	// An unresolvable date is left as-is so the guard reports it after the
	// state checks.
	date, err := calendar.Resolve(req.Date, s.now())
	if err != nil {
		date = strings.TrimSpace(req.Date)
	}

	guardCtx := coresession.RecordContext{
		CaseID:     req.CaseID,
		CaseExists: c != nil,
		Date:       date,
	}
	if c != nil {
		guardCtx.IsActive = c.IsActive
		guardCtx.SessionCount = len(c.Sessions)
	}
	if result := coresession.CanRecordSession(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	sess := models.TherapySession{
		ID:           len(c.Sessions) + 1,
		PatientID:    c.PatientID,
		TherapistID:  c.TherapistID,
		Date:         date,
		Activities:   strings.TrimSpace(req.Activities),
		Observations: strings.TrimSpace(req.Observations),
	}
	c.Sessions = append(c.Sessions, sess)

	detail := fmt.Sprintf("session %d on %s", sess.ID, sess.Date)
	if coresession.GoalUpdateApplies(req.GoalNumber, len(c.Goals)) {
		g := c.Goal(req.GoalNumber)
		g.Achieved++
		detail += fmt.Sprintf(", goal %d now %d/%d", req.GoalNumber, g.Achieved, g.TargetSessions)
	}
	s.registry.Touch()

	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventRecordSession, detail)
	return sessionToPort(sess), nil
}

// ListSessions lists a case's sessions in recording order.
func (s *SessionServiceImpl) ListSessions(ctx context.Context, caseID int) ([]*primary.Session, error) {
	c := s.registry.FindCaseByID(caseID)
	if c == nil {
		return nil, fmt.Errorf("case %d: %w", caseID, caseerr.ErrInvalidCase)
	}
	return sessionsToPort(c.Sessions), nil
}

// Ensure SessionServiceImpl implements the interface
var _ primary.SessionService = (*SessionServiceImpl)(nil)
