package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"uuid":          "must be a valid UUID",
	"nepali_phone":  "must be a valid Nepali mobile number (10 digits starting with 97 or 98)",
	"date_yyyymmdd": "must be a valid date in YYYY-MM-DD format",
	"time_hhmm":     "must be a valid time in HH:MM format",
	"time_slot":     "must be a valid time slot in HH:MM-HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Machine-checkable error codes surfaced next to human messages.
const (
	ErrCodeValidation              = "VALIDATION_ERROR"
	ErrCodeSlotUnavailable         = "SLOT_UNAVAILABLE"
	ErrCodeClinicNotVerified       = "CLINIC_NOT_VERIFIED"
	ErrCodeDoctorNotAffiliated     = "DOCTOR_NOT_AFFILIATED"
	ErrCodeProfileAlreadyClaimed   = "PROFILE_ALREADY_CLAIMED"
	ErrCodeClaimAlreadyPending     = "CLAIM_ALREADY_PENDING"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeTooManyOTPRequests      = "TOO_MANY_OTP_REQUESTS"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidCredentials            = "invalid email or password"
	ErrClientClinicNotFound                = "Clinic not found"
	ErrClientProfessionalNotFound          = "Professional not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientClaimNotFound                 = "Claim request not found"
	ErrClientClinicNotVerified             = "this clinic is not yet verified and cannot accept bookings"
	ErrClientDoctorNotAffiliated           = "this doctor does not practice at the selected clinic"
	ErrClientBookingFailed                 = "Failed to create appointment"
	ErrClientSlotPastDate                  = "appointments cannot be booked for a past date"
	ErrClientSlotNoSchedule                = "the doctor has no schedule for the selected day"
	ErrClientSlotOutsideSchedule           = "the selected time slot is outside the doctor's schedule"
	ErrClientSlotDoctorOnLeave             = "the doctor is on leave during the selected time slot"
	ErrClientSlotFullyBooked               = "the selected time slot is fully booked"
	ErrClientSlotTooSoon                   = "same-day slots must start at least %d minutes from now"
	ErrClientSlotBeingBooked               = "this slot is being booked by someone else, please retry"
	ErrClientProfileAlreadyClaimed         = "this profile has already been claimed"
	ErrClientClaimAlreadyPending           = "a claim request for this profile is already pending review"
	ErrClientInvalidStatusTransition       = "the appointment cannot move from %s to %s"
	ErrClientOTPExpired                    = "your verification code expired, please request a new one"
	ErrClientOTPInvalid                    = "the verification code is incorrect"
	ErrClientTooManyOTPRequests            = "too many verification codes requested, please wait a while"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Input validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "Failed to marshal JSON"
	ErrDevCannotUnmarshalJSON        = "Failed to unmarshal JSON"
	ErrDevCannotParseDate            = "Failed to parse date"
	ErrDevServerDeadlineExceeded     = "Request deadline exceeded"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' failed validation"

	ErrDevDBFailedToFindData       = "Postgres failed to find data"
	ErrDevDBFailedToInsertData     = "Postgres failed to insert data"
	ErrDevDBFailedToUpdateData     = "Postgres failed to update data"
	ErrDevDBFailedToDeleteData     = "Postgres failed to delete data"
	ErrDevDBFailedToIterateDataset = "Postgres failed to iterate dataset"
	ErrDevDBFailedToBeginTx        = "Postgres failed to begin transaction"
	ErrDevDBFailedToCommitTx       = "Postgres failed to commit transaction"

	ErrDevRedisGetData        = "Redis failed to get data"
	ErrDevRedisSetData        = "Redis failed to set data"
	ErrDevRedisDeleteData     = "Redis failed to delete data"
	ErrDevRedisIncrementValue = "Redis failed to increment value"
	ErrDevRedisGetNoData      = "Redis returned no data for key '%s'"
	ErrDevRedisUnlock         = "Redis failed to release lock"

	ErrDevRabbitMQPublishMessage = "RabbitMQ failed to publish message to queue '%s'"

	ErrDevMinioPresignObject = "Minio failed to presign object in bucket '%s'"

	ErrDevAuthInvalidAPIKey         = "API key does not match"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevAuthTokenInvalidOrExpired = "Session token is invalid or expired"
	ErrDevAuthOTPExpired            = "OTP is missing or expired"
	ErrDevAuthOTPInvalid            = "OTP does not match"
	ErrDevInvalidCredentials        = "Credentials do not match any staff account"
	ErrDevHashPassword              = "Failed to hash password"
)
