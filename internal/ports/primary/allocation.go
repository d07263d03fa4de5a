package primary

import "context"

// AllocationService defines the primary port for opening new cases.
type AllocationService interface {
	// AllocateCase registers a patient and opens their case, binding a
	// therapist (automatically or by id) and a supervisor.
	AllocateCase(ctx context.Context, req AllocateCaseRequest) (*AllocateCaseResponse, error)
}

// PatientInfo contains the demographic fields captured at allocation.
type PatientInfo struct {
	Name          string
	Diagnosis     string
	Age           int
	Gender        string
	Contact       string
	AdmissionDate string // YYYY-MM-DD
}

// AllocateCaseRequest contains parameters for opening a case.
// TherapistID is ignored when AutoAllocate is set.
type AllocateCaseRequest struct {
	Patient      PatientInfo
	SupervisorID int
	AutoAllocate bool
	TherapistID  int
}

// AllocateCaseResponse contains the result of opening a case.
type AllocateCaseResponse struct {
	CaseID         int
	PatientID      int
	TherapistID    int
	TherapistName  string
	SupervisorName string
}
