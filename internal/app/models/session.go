package models

import "time"

// Session is the redis-backed session payload referenced by the session JWT.
// Either Phone (patient/claimant sessions) or StaffID+ClinicID (dashboard
// sessions) is set, never both.
type Session struct {
	SessionID string
	Role      string
	Phone     string
	StaffID   string
	ClinicID  string
	ExpiresAt time.Time
}
