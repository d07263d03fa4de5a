package db

import "database/sql"

// SchemaVersion is recorded in schema_version on fresh installs.
const SchemaVersion = 1

// SchemaSQL is the complete schema for the case store.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL() so repository code that references a column
// missing here fails immediately with "no such column".
//
// The four registries are rewritten as a whole on every save, so goals and
// sessions cascade from their case. case_events is append-only and is not
// tied to cases by a foreign key so it survives those rewrites.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS patients (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	diagnosis TEXT NOT NULL DEFAULT '',
	age INTEGER NOT NULL DEFAULT 0,
	gender TEXT NOT NULL DEFAULT '',
	contact TEXT NOT NULL DEFAULT '',
	admission_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS therapists (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	specialization TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	current_cases INTEGER NOT NULL DEFAULT 0 CHECK (current_cases >= 0)
);

CREATE TABLE IF NOT EXISTS supervisors (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS cases (
	id INTEGER PRIMARY KEY,
	patient_id INTEGER NOT NULL,
	therapist_id INTEGER NOT NULL,
	supervisor_id INTEGER NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	clinical_rating REAL NOT NULL DEFAULT 0,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Active'
);

CREATE INDEX IF NOT EXISTS idx_cases_therapist ON cases(therapist_id);
CREATE INDEX IF NOT EXISTS idx_cases_supervisor ON cases(supervisor_id);

CREATE TABLE IF NOT EXISTS goals (
	case_id INTEGER NOT NULL,
	goal_number INTEGER NOT NULL,
	description TEXT NOT NULL,
	target_sessions INTEGER NOT NULL CHECK (target_sessions > 0),
	achieved INTEGER NOT NULL DEFAULT 0 CHECK (achieved >= 0),
	PRIMARY KEY (case_id, goal_number),
	FOREIGN KEY (case_id) REFERENCES cases(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sessions (
	case_id INTEGER NOT NULL,
	session_number INTEGER NOT NULL,
	patient_id INTEGER NOT NULL,
	therapist_id INTEGER NOT NULL,
	date TEXT NOT NULL,
	activities TEXT NOT NULL DEFAULT '',
	observations TEXT NOT NULL DEFAULT '',
	supervisor_feedback TEXT NOT NULL DEFAULT '',
	supervisor_reviewed INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (case_id, session_number),
	FOREIGN KEY (case_id) REFERENCES cases(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS case_events (
	id TEXT PRIMARY KEY,
	case_id INTEGER NOT NULL,
	action TEXT NOT NULL,
	actor TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_case_events_case ON case_events(case_id, created_at);
`

// InitSchema creates the schema on conn if it does not exist yet.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	_, err := conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// GetSchemaSQL returns the authoritative schema for tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
