package models

// Patient is a person under therapy. Created once at allocation, never edited.
type Patient struct {
	ID            int
	Name          string
	Diagnosis     string
	Age           int
	Gender        string // single upper-cased code, e.g. M, F, O
	Contact       string
	AdmissionDate string // YYYY-MM-DD
}

// Therapist carries the load-balancing counter CurrentCases, which always
// equals the number of active cases assigned to the therapist.
type Therapist struct {
	ID             int
	Name           string
	Specialization string
	Email          string
	CurrentCases   int
}

// Supervisor oversees cases and performs clinical evaluation.
type Supervisor struct {
	ID    int
	Name  string
	Email string
}
