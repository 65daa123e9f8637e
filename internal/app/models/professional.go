package models

import "time"

type Professional struct {
	ID            string
	FullName      string
	FullNameNe    string
	Type          string
	Specialty     string
	CouncilNumber string
	City          string
	ClaimedBy     *string
	TimeModel
}

// Affiliation links a professional to a clinic they practice at.
type Affiliation struct {
	ClinicID       string
	ProfessionalID string
}

// ClaimRequest is a pending ownership claim over a directory profile.
type ClaimRequest struct {
	ID             string
	ProfessionalID string
	Phone          string
	CouncilNumber  string
	DocumentKey    string
	Status         string
	DecidedAt      *time.Time
	TimeModel
}
