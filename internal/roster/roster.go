// Package roster provides the staff roster seeded into an empty store.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/slt/internal/models"
)

// Roster is the initial set of therapists and supervisors, in login order.
type Roster struct {
	Therapists  []models.Therapist
	Supervisors []models.Supervisor
}

type rosterFile struct {
	Therapists []struct {
		Name           string `yaml:"name"`
		Specialization string `yaml:"specialization"`
		Email          string `yaml:"email"`
	} `yaml:"therapists"`
	Supervisors []struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"supervisors"`
}

// Default returns the clinic's built-in roster.
func Default() *Roster {
	return &Roster{
		Therapists: []models.Therapist{
			{Name: "John Smith", Specialization: "Child Speech Disorders", Email: "john.smith@therapy.com"},
			{Name: "Emily Davis", Specialization: "Aphasia Rehabilitation", Email: "emily.davis@therapy.com"},
			{Name: "Michael Johnson", Specialization: "Voice Disorders", Email: "michael.johnson@therapy.com"},
		},
		Supervisors: []models.Supervisor{
			{Name: "Dr. Sarah Wilson", Email: "sarah.wilson@therapy.com"},
			{Name: "Dr. Robert Brown", Email: "robert.brown@therapy.com"},
		},
	}
}

// LoadFile reads a roster from a YAML file of the form:
//
//	therapists:
//	  - name: John Smith
//	    specialization: Child Speech Disorders
//	    email: john.smith@therapy.com
//	supervisors:
//	  - name: Dr. Sarah Wilson
//	    email: sarah.wilson@therapy.com
func LoadFile(path string) (*Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML roster content. Entries without a name are rejected.
func Parse(b []byte) (*Roster, error) {
	var rf rosterFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	r := &Roster{}
	for i, t := range rf.Therapists {
		if t.Name == "" {
			return nil, fmt.Errorf("therapist %d has no name", i+1)
		}
		r.Therapists = append(r.Therapists, models.Therapist{
			Name:           t.Name,
			Specialization: t.Specialization,
			Email:          t.Email,
		})
	}
	for i, s := range rf.Supervisors {
		if s.Name == "" {
			return nil, fmt.Errorf("supervisor %d has no name", i+1)
		}
		r.Supervisors = append(r.Supervisors, models.Supervisor{
			Name:  s.Name,
			Email: s.Email,
		})
	}
	return r, nil
}
