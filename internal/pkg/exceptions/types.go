package exceptions

import (
	"fmt"

	"swasthya-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		customError := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customError.ErrorCode = constvars.ErrCodeValidation
		return customError
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevHashPassword)
	}

	// Auth
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthInvalidAPIKey)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrNotAuthorized = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, "Session role lacks access to this resource")
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrOTPExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, constvars.ErrClientOTPExpired, constvars.ErrDevAuthOTPExpired)
	}
	ErrOTPInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientOTPInvalid, constvars.ErrDevAuthOTPInvalid)
	}
	ErrTooManyOTPRequests = func(retryAfterSecs int) *CustomError {
		return BuildNewDomainError(constvars.StatusTooManyRequests, constvars.ErrCodeTooManyOTPRequests, constvars.ErrClientTooManyOTPRequests, fmt.Sprintf("OTP request quota exceeded, retry after %ds", retryAfterSecs))
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDataset)
	}
	ErrPostgresDBBeginTx = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToBeginTx)
	}
	ErrPostgresDBCommitTx = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCommitTx)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}

	// Minio
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}
)

// Domain-state rejections. These carry machine codes per the public API
// contract, with a human message distinguishing the cause.

func ErrClinicNotFound() *CustomError {
	return BuildNewDomainError(constvars.StatusNotFound, "", constvars.ErrClientClinicNotFound, "clinic does not exist or is soft-deleted")
}

func ErrProfessionalNotFound() *CustomError {
	return BuildNewDomainError(constvars.StatusNotFound, "", constvars.ErrClientProfessionalNotFound, "professional does not exist")
}

func ErrAppointmentNotFound() *CustomError {
	return BuildNewDomainError(constvars.StatusNotFound, "", constvars.ErrClientAppointmentNotFound, "appointment does not exist")
}

func ErrClaimNotFound() *CustomError {
	return BuildNewDomainError(constvars.StatusNotFound, "", constvars.ErrClientClaimNotFound, "claim request does not exist or is already decided")
}

func ErrClinicNotVerified() *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeClinicNotVerified, constvars.ErrClientClinicNotVerified, "clinic verified flag is false")
}

func ErrDoctorNotAffiliated() *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeDoctorNotAffiliated, constvars.ErrClientDoctorNotAffiliated, "no affiliation row for clinic and professional")
}

// ErrPastBookingDate is a validation-class rejection: the date check sits
// ahead of slot resolution, so it carries no machine code.
func ErrPastBookingDate() *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, "", constvars.ErrClientSlotPastDate, "booking date is before today")
}

func ErrSlotUnavailable(clientMessage string) *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeSlotUnavailable, clientMessage, "slot rejected: "+clientMessage)
}

func ErrProfileAlreadyClaimed() *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeProfileAlreadyClaimed, constvars.ErrClientProfileAlreadyClaimed, "professional already has claimed_by set")
}

func ErrClaimAlreadyPending() *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeClaimAlreadyPending, constvars.ErrClientClaimAlreadyPending, "pending claim request exists for professional")
}

func ErrInvalidStatusTransition(from, to string) *CustomError {
	return BuildNewDomainError(constvars.StatusBadRequest, constvars.ErrCodeInvalidStatusTransition, fmt.Sprintf(constvars.ErrClientInvalidStatusTransition, from, to), "status transition rejected by transition table")
}
