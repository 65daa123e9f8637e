package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SWSTHY_SVC_"
)

const (
	SwasthyaRoleGuest       = "Guest"
	SwasthyaRolePatient     = "Patient"
	SwasthyaRoleClinicStaff = "Clinic Staff"
	SwasthyaRoleSuperadmin  = "Superadmin"
)

// Professional directory categories.
const (
	ProfessionalTypeDoctor     = "DOCTOR"
	ProfessionalTypeDentist    = "DENTIST"
	ProfessionalTypePharmacist = "PHARMACIST"
)

// Appointment lifecycle values.
const (
	AppointmentStatusScheduled  = "SCHEDULED"
	AppointmentStatusCheckedIn  = "CHECKED_IN"
	AppointmentStatusInProgress = "IN_PROGRESS"
	AppointmentStatusCompleted  = "COMPLETED"
	AppointmentStatusCancelled  = "CANCELLED"
	AppointmentStatusNoShow     = "NO_SHOW"

	AppointmentTypeNew      = "NEW"
	AppointmentTypeFollowUp = "FOLLOW_UP"

	AppointmentSourceOnline = "ONLINE"
	AppointmentSourceWalkIn = "WALK_IN"
)

// Claim request states.
const (
	ClaimStatusPending  = "PENDING"
	ClaimStatusApproved = "APPROVED"
	ClaimStatusRejected = "REJECTED"
)

const (
	PatientNumberFormat    = "P-%06d"
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	OTPLimiterGroupName = "otp-request"
)
