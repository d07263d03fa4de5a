package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/roster"
	"github.com/example/slt/internal/store"
)

// StateServiceImpl moves the registries between persistence and memory.
type StateServiceImpl struct {
	stateRepo secondary.StateRepository
	logger    zerolog.Logger
}

// NewStateService creates a new StateService with injected dependencies.
func NewStateService(stateRepo secondary.StateRepository, logger zerolog.Logger) *StateServiceImpl {
	return &StateServiceImpl{
		stateRepo: stateRepo,
		logger:    logger.With().Str("component", "state").Logger(),
	}
}

// Load builds the registry from persistence. A load failure is logged and
// yields an empty registry. Empty rosters are seeded from seed.
func (s *StateServiceImpl) Load(ctx context.Context, seed *roster.Roster) (*store.Registry, error) {
	snapshot, err := s.stateRepo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not load saved data, starting with an empty store")
		snapshot = nil
	}
	reg := store.FromSnapshot(snapshot)

	if seed != nil && reg.TherapistCount() == 0 {
		for _, t := range seed.Therapists {
			if _, err := reg.RegisterTherapist(t); err != nil {
				return nil, fmt.Errorf("failed to seed therapists: %w", err)
			}
		}
	}
	if seed != nil && reg.SupervisorCount() == 0 {
		for _, sup := range seed.Supervisors {
			if _, err := reg.RegisterSupervisor(sup); err != nil {
				return nil, fmt.Errorf("failed to seed supervisors: %w", err)
			}
		}
	}

	s.logger.Debug().
		Int("patients", reg.PatientCount()).
		Int("therapists", reg.TherapistCount()).
		Int("supervisors", reg.SupervisorCount()).
		Int("cases", len(reg.Cases())).
		Msg("store loaded")
	return reg, nil
}

// Flush saves the registry if it changed since it was loaded.
func (s *StateServiceImpl) Flush(ctx context.Context, reg *store.Registry) error {
	if !reg.Dirty() {
		return nil
	}
	if err := s.stateRepo.Save(ctx, reg.Snapshot()); err != nil {
		return fmt.Errorf("failed to save data: %w: %w", err, caseerr.ErrIOFailure)
	}
	reg.MarkClean()
	s.logger.Debug().Msg("store saved")
	return nil
}
