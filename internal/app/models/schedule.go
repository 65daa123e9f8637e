package models

import "time"

// Schedule is a recurring weekly availability rule for a professional at a
// clinic. DayOfWeek follows time.Weekday numbering, 0 = Sunday, which also
// matches the start of the Nepali working week.
type Schedule struct {
	ID                 string
	ClinicID           string
	ProfessionalID     string
	DayOfWeek          int
	StartTime          string
	EndTime            string
	MaxPatientsPerSlot int
	EffectiveFrom      time.Time
	EffectiveTo        *time.Time
	IsActive           bool
	TimeModel
}

// CoversDate reports whether the schedule's effective range contains the date.
func (s *Schedule) CoversDate(date time.Time) bool {
	if date.Before(s.EffectiveFrom) {
		return false
	}
	if s.EffectiveTo != nil && date.After(*s.EffectiveTo) {
		return false
	}
	return true
}

// Leave is a date-specific exception overriding a schedule. Nil start/end
// times mean the professional is out for the whole day.
type Leave struct {
	ID             string
	ClinicID       string
	ProfessionalID string
	LeaveDate      time.Time
	StartTime      *string
	EndTime        *string
	Reason         string
	TimeModel
}
