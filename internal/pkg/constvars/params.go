package constvars

const (
	URLParamClinicID       = "clinic_id"
	URLParamProfessionalID = "professional_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamScheduleID     = "schedule_id"
	URLParamLeaveID        = "leave_id"
	URLParamClaimID        = "claim_id"
)

const (
	URLQueryParamSearch   = "q"
	URLQueryParamType     = "type"
	URLQueryParamCity     = "city"
	URLQueryParamDate     = "date"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamClinicID = "clinicId"
	URLQueryParamDoctorID = "doctorId"
	URLQueryParamPhone    = "phone"
)
