package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	coreallocation "github.com/example/slt/internal/core/allocation"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/ports/secondary"
	"github.com/example/slt/internal/store"
)

// AllocationServiceImpl implements the AllocationService interface.
type AllocationServiceImpl struct {
	registry  *store.Registry
	logWriter secondary.LogWriter
	logger    zerolog.Logger
}

// NewAllocationService creates a new AllocationService with injected dependencies.
func NewAllocationService(registry *store.Registry, logWriter secondary.LogWriter, logger zerolog.Logger) *AllocationServiceImpl {
	return &AllocationServiceImpl{
		registry:  registry,
		logWriter: logWriter,
		logger:    logger.With().Str("component", "allocation").Logger(),
	}
}

// AllocateCase registers the patient and opens their case.
func (s *AllocationServiceImpl) AllocateCase(ctx context.Context, req primary.AllocateCaseRequest) (*primary.AllocateCaseResponse, error) {
	// Resolve the therapist before guarding so the guard sees the outcome
	var therapist *models.Therapist
	therapistID := req.TherapistID
	if req.AutoAllocate {
		therapist = s.registry.LeastLoadedTherapist()
		if therapist != nil {
			therapistID = therapist.ID
		}
	} else {
		therapist = s.registry.FindTherapistByID(req.TherapistID)
	}
	supervisor := s.registry.FindSupervisorByID(req.SupervisorID)

	admission := strings.TrimSpace(req.Patient.AdmissionDate)
	guardCtx := coreallocation.AllocateContext{
		PatientCount:     s.registry.PatientCount(),
		CaseCount:        s.registry.CaseCount(),
		AdmissionDate:    admission,
		AutoAllocate:     req.AutoAllocate,
		TherapistID:      therapistID,
		TherapistExists:  therapist != nil,
		SupervisorID:     req.SupervisorID,
		SupervisorExists: supervisor != nil,
	}
	if result := coreallocation.CanAllocate(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	patient, err := s.registry.AddPatient(models.Patient{
		Name:          strings.TrimSpace(req.Patient.Name),
		Diagnosis:     strings.TrimSpace(req.Patient.Diagnosis),
		Age:           req.Patient.Age,
		Gender:        normalizeGender(req.Patient.Gender),
		Contact:       strings.TrimSpace(req.Patient.Contact),
		AdmissionDate: admission,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	c, err := s.registry.AddCase(models.TherapyCase{
		PatientID:    patient.ID,
		TherapistID:  therapist.ID,
		SupervisorID: supervisor.ID,
		IsActive:     true,
		StartDate:    admission,
		Status:       models.CaseStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open case: %w", err)
	}
	therapist.CurrentCases++

	s.logger.Debug().
		Int("case_id", c.ID).
		Int("therapist_id", therapist.ID).
		Bool("auto", req.AutoAllocate).
		Msg("case allocated")
	recordEvent(ctx, s.logWriter, s.logger, c.ID, models.EventAllocate,
		fmt.Sprintf("patient %d %s assigned to therapist %d %s, supervisor %d %s",
			patient.ID, patient.Name, therapist.ID, therapist.Name, supervisor.ID, supervisor.Name))

	return &primary.AllocateCaseResponse{
		CaseID:         c.ID,
		PatientID:      patient.ID,
		TherapistID:    therapist.ID,
		TherapistName:  therapist.Name,
		SupervisorName: supervisor.Name,
	}, nil
}

// Ensure AllocationServiceImpl implements the interface
var _ primary.AllocationService = (*AllocationServiceImpl)(nil)
