package models

import (
	"time"

	"swasthya-service/internal/pkg/constvars"
)

type Appointment struct {
	ID              string
	ClinicID        string
	ProfessionalID  string
	PatientID       string
	AppointmentDate time.Time
	SlotStart       string
	SlotEnd         string
	Status          string
	Type            string
	Source          string
	TokenNumber     int
	ChiefComplaint  *string
	TimeModel
}

// appointmentTransitions is the explicit lifecycle table. Anything not listed
// is rejected at the API boundary.
var appointmentTransitions = map[string][]string{
	constvars.AppointmentStatusScheduled: {
		constvars.AppointmentStatusCheckedIn,
		constvars.AppointmentStatusCancelled,
		constvars.AppointmentStatusNoShow,
	},
	constvars.AppointmentStatusCheckedIn: {
		constvars.AppointmentStatusInProgress,
		constvars.AppointmentStatusCancelled,
		constvars.AppointmentStatusNoShow,
	},
	constvars.AppointmentStatusInProgress: {
		constvars.AppointmentStatusCompleted,
	},
}

// ActiveAppointmentStatuses are the non-terminal states that count against a
// slot's capacity.
var ActiveAppointmentStatuses = []string{
	constvars.AppointmentStatusScheduled,
	constvars.AppointmentStatusCheckedIn,
	constvars.AppointmentStatusInProgress,
}

func IsValidAppointmentStatus(status string) bool {
	switch status {
	case constvars.AppointmentStatusScheduled,
		constvars.AppointmentStatusCheckedIn,
		constvars.AppointmentStatusInProgress,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled,
		constvars.AppointmentStatusNoShow:
		return true
	}
	return false
}

// CanTransitionAppointmentStatus reports whether from -> to is a legal move.
func CanTransitionAppointmentStatus(from, to string) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
