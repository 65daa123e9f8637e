package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Directory messages
	GetProfessionalsSuccessfully       = "get professionals successfully"
	GetProfessionalDetailSuccessfully  = "get professional detail successfully"
	GetClinicSuccessfully              = "get clinic successfully"
	RegisterClinicSuccessMessage       = "clinic registered successfully, pending verification"
	VerifyClinicSuccessMessage         = "clinic verified successfully"

	// Booking messages
	GetSlotsSuccessfully                = "get available slots successfully"
	GetAppointmentsSuccessfully         = "get appointments successfully"
	UpdateAppointmentStatusSuccessfully = "appointment status updated successfully"

	// Schedule messages
	CreateScheduleSuccessMessage     = "schedule created successfully"
	GetSchedulesSuccessfully         = "get schedules successfully"
	DeactivateScheduleSuccessMessage = "schedule deactivated successfully"
	CreateLeaveSuccessMessage        = "leave created successfully"
	GetLeavesSuccessfully            = "get leaves successfully"
	DeleteLeaveSuccessMessage        = "leave deleted successfully"

	// Auth messages
	OTPRequestedSuccessMessage = "verification code sent"
	OTPVerifiedSuccessMessage  = "phone number verified successfully"
	LoginSuccessMessage        = "successfully login"
	LogoutSuccessMessage       = "successfully logout"

	// Claim messages
	ClaimSubmittedSuccessMessage = "claim request submitted for review"
	ClaimUploadURLSuccessMessage = "upload url generated successfully"
	ClaimDecidedSuccessMessage   = "claim request decided successfully"
	GetClaimDetailSuccessfully   = "claim request retrieved successfully"
)
