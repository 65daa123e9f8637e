package requests

// CreateBooking is the public booking payload. Field names are part of the
// published API contract and must not change.
type CreateBooking struct {
	ClinicID       string `json:"clinicId" validate:"required"`
	DoctorID       string `json:"doctorId" validate:"required"`
	Date           string `json:"date" validate:"required,date_yyyymmdd"`
	TimeSlot       string `json:"timeSlot" validate:"required,time_slot"`
	PatientName    string `json:"patientName" validate:"required,min=2,max=120"`
	PatientPhone   string `json:"patientPhone" validate:"required,nepali_phone"`
	PatientEmail   string `json:"patientEmail" validate:"omitempty,email"`
	ChiefComplaint string `json:"chiefComplaint" validate:"omitempty,max=500"`
}

type ListSlots struct {
	ClinicID string `validate:"required"`
	DoctorID string `validate:"required"`
	Date     string `validate:"required,date_yyyymmdd"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CHECKED_IN IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
}
