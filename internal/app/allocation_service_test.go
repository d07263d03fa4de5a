package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/store"
)

func newTestAllocationService(t *testing.T) (*AllocationServiceImpl, *store.Registry, *mockLogWriter) {
	t.Helper()
	reg := newTestRegistry(t)
	logWriter := &mockLogWriter{}
	return NewAllocationService(reg, logWriter, testLogger()), reg, logWriter
}

func annRequest() primary.AllocateCaseRequest {
	return primary.AllocateCaseRequest{
		Patient: primary.PatientInfo{
			Name:          "Ann",
			Diagnosis:     "Articulation disorder",
			Age:           6,
			Gender:        "female",
			Contact:       "555-0100",
			AdmissionDate: "2024-01-15",
		},
		SupervisorID: 1,
		AutoAllocate: true,
	}
}

func TestAllocateCase_AutoPicksLeastLoaded(t *testing.T) {
	service, reg, logWriter := newTestAllocationService(t)
	reg.FindTherapistByID(1).CurrentCases = 2
	reg.FindTherapistByID(2).CurrentCases = 1
	reg.FindTherapistByID(3).CurrentCases = 1

	resp, err := service.AllocateCase(context.Background(), annRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.TherapistID != 2 {
		t.Errorf("expected therapist 2, got %d", resp.TherapistID)
	}
	if got := therapistLoads(reg); !reflect.DeepEqual(got, []int{2, 2, 1}) {
		t.Errorf("loads = %v, want [2 2 1]", got)
	}

	c := reg.FindCaseByID(resp.CaseID)
	if c == nil {
		t.Fatal("case was not stored")
	}
	if !c.IsActive || c.Status != models.CaseStatusActive || c.EndDate != "" {
		t.Errorf("unexpected case state: %+v", c)
	}
	if c.StartDate != "2024-01-15" || c.ClinicalRating != 0 {
		t.Errorf("unexpected start date or rating: %+v", c)
	}
	if p := reg.FindPatientByID(resp.PatientID); p == nil || p.Gender != "F" {
		t.Errorf("expected patient with gender F, got %+v", p)
	}
	if len(logWriter.events) != 1 || logWriter.events[0].Action != models.EventAllocate {
		t.Errorf("expected one allocate event, got %+v", logWriter.events)
	}
}

func TestAllocateCase_Manual(t *testing.T) {
	service, reg, _ := newTestAllocationService(t)
	req := annRequest()
	req.AutoAllocate = false
	req.TherapistID = 3
	req.SupervisorID = 2

	resp, err := service.AllocateCase(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.TherapistID != 3 || resp.SupervisorName != "Dr. Robert Brown" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if got := therapistLoads(reg); !reflect.DeepEqual(got, []int{0, 0, 1}) {
		t.Errorf("loads = %v, want [0 0 1]", got)
	}
}

func TestAllocateCase_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*primary.AllocateCaseRequest)
		setup   func(*store.Registry)
		wantErr error
	}{
		{
			name:    "bad admission date",
			mutate:  func(r *primary.AllocateCaseRequest) { r.Patient.AdmissionDate = "2024/01/15" },
			wantErr: caseerr.ErrInvalidDate,
		},
		{
			name: "unknown manual therapist",
			mutate: func(r *primary.AllocateCaseRequest) {
				r.AutoAllocate = false
				r.TherapistID = 9
			},
			wantErr: caseerr.ErrUnknownTherapist,
		},
		{
			name:    "unknown supervisor",
			mutate:  func(r *primary.AllocateCaseRequest) { r.SupervisorID = 7 },
			wantErr: caseerr.ErrUnknownSupervisor,
		},
		{
			name: "patient registry full",
			setup: func(reg *store.Registry) {
				for i := 0; i < store.MaxPatients; i++ {
					_, _ = reg.AddPatient(models.Patient{Name: "P"})
				}
			},
			wantErr: caseerr.ErrPatientCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, reg, logWriter := newTestAllocationService(t)
			if tt.setup != nil {
				tt.setup(reg)
			}
			patientsBefore := reg.PatientCount()
			req := annRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := service.AllocateCase(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if reg.PatientCount() != patientsBefore || len(reg.Cases()) != 0 {
				t.Error("failed allocation must not mutate the registry")
			}
			if got := therapistLoads(reg); !reflect.DeepEqual(got, []int{0, 0, 0}) {
				t.Errorf("loads changed on failure: %v", got)
			}
			if len(logWriter.events) != 0 {
				t.Error("failed allocation must not log events")
			}
		})
	}
}

func TestAllocateCase_NoTherapistAvailable(t *testing.T) {
	reg := store.New()
	_, _ = reg.RegisterSupervisor(models.Supervisor{Name: "Dr. Sarah Wilson"})
	service := NewAllocationService(reg, nil, testLogger())

	_, err := service.AllocateCase(context.Background(), annRequest())
	if !errors.Is(err, caseerr.ErrNoTherapistAvailable) {
		t.Fatalf("expected ErrNoTherapistAvailable, got %v", err)
	}
	if !caseerr.IsNotFound(err) {
		t.Error("expected NotFound category")
	}
}

func TestAllocateCase_CapacityBeforeDate(t *testing.T) {
	service, reg, _ := newTestAllocationService(t)
	for i := 0; i < store.MaxPatients; i++ {
		_, _ = reg.AddPatient(models.Patient{Name: "P"})
	}
	req := annRequest()
	req.Patient.AdmissionDate = "bad"

	_, err := service.AllocateCase(context.Background(), req)
	if !caseerr.IsCapacity(err) {
		t.Errorf("expected capacity error first, got %v", err)
	}
}

func TestAllocateCase_CaseCapacityLeavesNoPatient(t *testing.T) {
	service, reg, logWriter := newTestAllocationService(t)
	// A loaded store can hold more cases than patients
	for i := 0; i < store.MaxCases; i++ {
		if _, err := reg.AddCase(models.TherapyCase{TherapistID: 1, SupervisorID: 1}); err != nil {
			t.Fatalf("failed to add case: %v", err)
		}
	}
	loads := therapistLoads(reg)

	_, err := service.AllocateCase(context.Background(), annRequest())
	if !errors.Is(err, caseerr.ErrCaseCapacity) {
		t.Fatalf("expected ErrCaseCapacity, got %v", err)
	}
	if reg.PatientCount() != 0 {
		t.Errorf("orphan patient registered: %d patients", reg.PatientCount())
	}
	if got := therapistLoads(reg); !reflect.DeepEqual(got, loads) {
		t.Errorf("loads changed: %v", got)
	}
	if len(logWriter.actions()) != 0 {
		t.Errorf("unexpected events: %v", logWriter.actions())
	}
}
