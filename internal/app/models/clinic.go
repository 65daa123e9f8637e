package models

type Clinic struct {
	ID         string
	Name       string
	NameNe     string
	Address    string
	City       string
	Phone      string
	Email      string
	Verified   bool
	PatientSeq int64
	TimeModel
}

// ClinicStaff is a dashboard login bound to a single clinic.
type ClinicStaff struct {
	ID           string
	ClinicID     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	TimeModel
}
