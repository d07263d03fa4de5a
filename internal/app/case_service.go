package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/slt/internal/core/caseerr"
	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/store"
)

// CaseQueryServiceImpl implements the CaseQueryService interface.
type CaseQueryServiceImpl struct {
	registry *store.Registry
}

// NewCaseQueryService creates a new CaseQueryService with injected dependencies.
func NewCaseQueryService(registry *store.Registry) *CaseQueryServiceImpl {
	return &CaseQueryServiceImpl{registry: registry}
}

// GetCase retrieves the full view of one case.
func (s *CaseQueryServiceImpl) GetCase(ctx context.Context, caseID int) (*primary.Case, error) {
	c := s.registry.FindCaseByID(caseID)
	if c == nil {
		return nil, fmt.Errorf("case %d: %w", caseID, caseerr.ErrInvalidCase)
	}
	return caseToPort(s.registry, c), nil
}

// SearchCases lists cases matching the filters in id order. An empty
// result is not an error.
func (s *CaseQueryServiceImpl) SearchCases(ctx context.Context, filters primary.CaseFilters) ([]*primary.Case, error) {
	var out []*primary.Case
	for _, c := range s.registry.Cases() {
		if matchesFilters(c, filters) {
			out = append(out, caseToPort(s.registry, c))
		}
	}
	return out, nil
}

func matchesFilters(c *models.TherapyCase, f primary.CaseFilters) bool {
	if f.PatientID != 0 && c.PatientID != f.PatientID {
		return false
	}
	if f.TherapistID != 0 && c.TherapistID != f.TherapistID {
		return false
	}
	if f.SupervisorID != 0 && c.SupervisorID != f.SupervisorID {
		return false
	}
	if f.Status != "" && !strings.EqualFold(c.Status, strings.TrimSpace(f.Status)) {
		return false
	}
	if f.ActiveOnly && !c.IsActive {
		return false
	}
	return true
}

// Ensure CaseQueryServiceImpl implements the interface
var _ primary.CaseQueryService = (*CaseQueryServiceImpl)(nil)
