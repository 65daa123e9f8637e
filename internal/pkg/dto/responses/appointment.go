package responses

// BookingConfirmation is the public booking response. It is written at the
// top level of the response body (not wrapped in ResponseDTO) because the
// field set is pinned by the published API contract.
type BookingConfirmation struct {
	Success       bool   `json:"success"`
	AppointmentID string `json:"appointmentId"`
	TokenNumber   int    `json:"tokenNumber"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	DoctorName    string `json:"doctorName"`
	DoctorType    string `json:"doctorType"`
	ClinicName    string `json:"clinicName"`
	ClinicAddress string `json:"clinicAddress"`
	ClinicPhone   string `json:"clinicPhone"`
	PatientName   string `json:"patientName"`
	PatientPhone  string `json:"patientPhone"`
}

type Appointment struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professional_id"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name,omitempty"`
	PatientPhone   string `json:"patient_phone,omitempty"`
	Date           string `json:"date"`
	TimeSlot       string `json:"time_slot"`
	Status         string `json:"status"`
	Type           string `json:"type"`
	Source         string `json:"source"`
	TokenNumber    int    `json:"token_number"`
	ChiefComplaint string `json:"chief_complaint,omitempty"`
}

type Slot struct {
	TimeSlot          string `json:"time_slot"`
	RemainingCapacity int    `json:"remaining_capacity"`
	Available         bool   `json:"available"`
}

type DaySlots struct {
	ClinicID       string `json:"clinic_id"`
	ProfessionalID string `json:"professional_id"`
	Date           string `json:"date"`
	Slots          []Slot `json:"slots"`
}
