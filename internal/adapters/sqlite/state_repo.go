// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/slt/internal/models"
	"github.com/example/slt/internal/ports/secondary"
)

// StateRepository implements secondary.StateRepository with SQLite.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new SQLite state repository.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load reads the four registries in id order. An empty database yields an
// empty snapshot.
func (r *StateRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	var err error

	if snap.Patients, err = r.loadPatients(ctx); err != nil {
		return nil, err
	}
	if snap.Therapists, err = r.loadTherapists(ctx); err != nil {
		return nil, err
	}
	if snap.Supervisors, err = r.loadSupervisors(ctx); err != nil {
		return nil, err
	}
	if snap.Cases, err = r.loadCases(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save replaces the stored registries with the snapshot in one transaction.
func (r *StateRepository) Save(ctx context.Context, snap *models.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first so the foreign keys never dangle
	for _, table := range []string{"sessions", "goals", "cases", "patients", "therapists", "supervisors"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, p := range snap.Patients {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO patients (id, name, diagnosis, age, gender, contact, admission_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Diagnosis, p.Age, p.Gender, p.Contact, p.AdmissionDate,
		)
		if err != nil {
			return fmt.Errorf("failed to save patient %d: %w", p.ID, err)
		}
	}

	for _, t := range snap.Therapists {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO therapists (id, name, specialization, email, current_cases) VALUES (?, ?, ?, ?, ?)",
			t.ID, t.Name, t.Specialization, t.Email, t.CurrentCases,
		)
		if err != nil {
			return fmt.Errorf("failed to save therapist %d: %w", t.ID, err)
		}
	}

	for _, s := range snap.Supervisors {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO supervisors (id, name, email) VALUES (?, ?, ?)",
			s.ID, s.Name, s.Email,
		)
		if err != nil {
			return fmt.Errorf("failed to save supervisor %d: %w", s.ID, err)
		}
	}

	for _, c := range snap.Cases {
		if err := saveCase(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func saveCase(ctx context.Context, tx *sql.Tx, c *models.TherapyCase) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO cases (id, patient_id, therapist_id, supervisor_id, is_active, clinical_rating, start_date, end_date, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.PatientID, c.TherapistID, c.SupervisorID, boolToInt(c.IsActive), c.ClinicalRating, c.StartDate, c.EndDate, c.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save case %d: %w", c.ID, err)
	}

	for _, g := range c.Goals {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO goals (case_id, goal_number, description, target_sessions, achieved) VALUES (?, ?, ?, ?, ?)",
			c.ID, g.ID, g.Description, g.TargetSessions, g.Achieved,
		)
		if err != nil {
			return fmt.Errorf("failed to save goal %d of case %d: %w", g.ID, c.ID, err)
		}
	}

	for _, s := range c.Sessions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (case_id, session_number, patient_id, therapist_id, date, activities, observations, supervisor_feedback, supervisor_reviewed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, s.ID, s.PatientID, s.TherapistID, s.Date, s.Activities, s.Observations, s.SupervisorFeedback, boolToInt(s.SupervisorReviewed),
		)
		if err != nil {
			return fmt.Errorf("failed to save session %d of case %d: %w", s.ID, c.ID, err)
		}
	}
	return nil
}

func (r *StateRepository) loadPatients(ctx context.Context) ([]*models.Patient, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, diagnosis, age, gender, contact, admission_date FROM patients ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	defer rows.Close()

	var patients []*models.Patient
	for rows.Next() {
		p := &models.Patient{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Diagnosis, &p.Age, &p.Gender, &p.Contact, &p.AdmissionDate); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *StateRepository) loadTherapists(ctx context.Context) ([]*models.Therapist, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, specialization, email, current_cases FROM therapists ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapists: %w", err)
	}
	defer rows.Close()

	var therapists []*models.Therapist
	for rows.Next() {
		t := &models.Therapist{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialization, &t.Email, &t.CurrentCases); err != nil {
			return nil, fmt.Errorf("failed to scan therapist: %w", err)
		}
		therapists = append(therapists, t)
	}
	return therapists, rows.Err()
}

func (r *StateRepository) loadSupervisors(ctx context.Context) ([]*models.Supervisor, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, email FROM supervisors ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load supervisors: %w", err)
	}
	defer rows.Close()

	var supervisors []*models.Supervisor
	for rows.Next() {
		s := &models.Supervisor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, fmt.Errorf("failed to scan supervisor: %w", err)
		}
		supervisors = append(supervisors, s)
	}
	return supervisors, rows.Err()
}

func (r *StateRepository) loadCases(ctx context.Context) ([]*models.TherapyCase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, therapist_id, supervisor_id, is_active, clinical_rating, start_date, end_date, status
		 FROM cases ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	var cases []*models.TherapyCase
	byID := make(map[int]*models.TherapyCase)
	for rows.Next() {
		var active int
		c := &models.TherapyCase{}
		if err := rows.Scan(&c.ID, &c.PatientID, &c.TherapistID, &c.SupervisorID, &active,
			&c.ClinicalRating, &c.StartDate, &c.EndDate, &c.Status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		c.IsActive = active != 0
		cases = append(cases, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}
	rows.Close()

	if err := r.loadGoals(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.loadSessions(ctx, byID); err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *StateRepository) loadGoals(ctx context.Context, byID map[int]*models.TherapyCase) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT case_id, goal_number, description, target_sessions, achieved FROM goals ORDER BY case_id ASC, goal_number ASC",
	)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var caseID int
		g := models.TherapyGoal{}
		if err := rows.Scan(&caseID, &g.ID, &g.Description, &g.TargetSessions, &g.Achieved); err != nil {
			return fmt.Errorf("failed to scan goal: %w", err)
		}
		if c, ok := byID[caseID]; ok {
			c.Goals = append(c.Goals, g)
		}
	}
	return rows.Err()
}

func (r *StateRepository) loadSessions(ctx context.Context, byID map[int]*models.TherapyCase) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT case_id, session_number, patient_id, therapist_id, date, activities, observations, supervisor_feedback, supervisor_reviewed
		 FROM sessions ORDER BY case_id ASC, session_number ASC`,
	)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			caseID   int
			reviewed int
		)
		s := models.TherapySession{}
		if err := rows.Scan(&caseID, &s.ID, &s.PatientID, &s.TherapistID, &s.Date,
			&s.Activities, &s.Observations, &s.SupervisorFeedback, &reviewed); err != nil {
			return fmt.Errorf("failed to scan session: %w", err)
		}
		s.SupervisorReviewed = reviewed != 0
		if c, ok := byID[caseID]; ok {
			c.Sessions = append(c.Sessions, s)
		}
	}
	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure StateRepository implements the interface
var _ secondary.StateRepository = (*StateRepository)(nil)
