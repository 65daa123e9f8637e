package models

// Patient is a clinic-scoped identity keyed by phone number. The same person
// booking at two clinics gets two patient rows; within a clinic the phone is
// the durable identity and repeat bookings refresh name/email in place.
type Patient struct {
	ID            string
	ClinicID      string
	PatientNumber string
	FullName      string
	Phone         string
	Email         *string
	TimeModel
}
