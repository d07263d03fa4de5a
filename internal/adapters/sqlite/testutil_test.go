// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/slt/internal/db"
	"github.com/example/slt/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every connection to ":memory:" is a separate database
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// sampleSnapshot returns a small store: two patients with cases, one closed.
func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Patients: []*models.Patient{
			{ID: 1, Name: "Ann", Diagnosis: "Articulation disorder", Age: 6, Gender: "F", Contact: "555-0100", AdmissionDate: "2024-01-15"},
			{ID: 2, Name: "Bob", Diagnosis: "Aphasia", Age: 67, Gender: "M", Contact: "555-0101", AdmissionDate: "2024-02-01"},
		},
		Therapists: []*models.Therapist{
			{ID: 1, Name: "John Smith", Specialization: "Child Speech Disorders", Email: "john.smith@therapy.com", CurrentCases: 1},
			{ID: 2, Name: "Emily Davis", Specialization: "Aphasia Rehabilitation", Email: "emily.davis@therapy.com", CurrentCases: 0},
		},
		Supervisors: []*models.Supervisor{
			{ID: 1, Name: "Dr. Sarah Wilson", Email: "sarah.wilson@therapy.com"},
		},
		Cases: []*models.TherapyCase{
			{
				ID: 1, PatientID: 1, TherapistID: 1, SupervisorID: 1,
				IsActive: true, ClinicalRating: 3.5, StartDate: "2024-01-15", Status: models.CaseStatusActive,
				Goals: []models.TherapyGoal{
					{ID: 1, Description: "Produce /s/", TargetSessions: 5, Achieved: 2},
					{ID: 2, Description: "Two-word phrases", TargetSessions: 3},
				},
				Sessions: []models.TherapySession{
					{ID: 1, PatientID: 1, TherapistID: 1, Date: "2024-01-20", Activities: "Drills", Observations: "Engaged"},
					{ID: 2, PatientID: 1, TherapistID: 1, Date: "2024-01-27", Activities: "Games", SupervisorFeedback: "Good", SupervisorReviewed: true},
				},
			},
			{
				ID: 2, PatientID: 2, TherapistID: 2, SupervisorID: 1,
				IsActive: false, ClinicalRating: 4, StartDate: "2024-02-01", EndDate: "2024-05-01", Status: "Discontinued",
			},
		},
	}
}
