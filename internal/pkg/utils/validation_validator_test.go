package utils

import (
	"testing"

	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func validBookingRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		ClinicID:     "b2f9c1a0-5e9e-4f6b-9a1d-1c2d3e4f5a6b",
		DoctorID:     "c3e8d2b1-6fae-4c7b-8b2e-2d3e4f5a6b7c",
		Date:         "2026-09-15",
		TimeSlot:     "10:00-10:30",
		PatientName:  "Sita Sharma",
		PatientPhone: "9841234567",
	}
}

func TestValidateStruct_CreateBooking(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validBookingRequest()))
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		request := validBookingRequest()
		request.ClinicID = ""

		err := ValidateStruct(request)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", customErr.ErrorCode)
	})

	t.Run("Invalid Nepali Phone", func(t *testing.T) {
		for _, phone := range []string{"9941234567", "984123456", "98412345678", "+9779841234567", "abcdefghij"} {
			request := validBookingRequest()
			request.PatientPhone = phone
			assert.Error(t, ValidateStruct(request), "phone %q should be rejected", phone)
		}
	})

	t.Run("Valid Phone Prefixes", func(t *testing.T) {
		for _, phone := range []string{"9841234567", "9741234567", "9801234567"} {
			request := validBookingRequest()
			request.PatientPhone = phone
			assert.NoError(t, ValidateStruct(request), "phone %q should be accepted", phone)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		for _, date := range []string{"2026-13-01", "2026-02-30", "15-01-2026", "2026/01/15"} {
			request := validBookingRequest()
			request.Date = date
			assert.Error(t, ValidateStruct(request), "date %q should be rejected", date)
		}
	})

	t.Run("Invalid Time Slot", func(t *testing.T) {
		for _, slot := range []string{"10:00", "10:00–10:30", "25:00-25:30", "10:30-10:00", "10:00-10:00"} {
			request := validBookingRequest()
			request.TimeSlot = slot
			assert.Error(t, ValidateStruct(request), "slot %q should be rejected", slot)
		}
	})

	t.Run("Optional Email", func(t *testing.T) {
		request := validBookingRequest()
		request.PatientEmail = "not-an-email"
		assert.Error(t, ValidateStruct(request))

		request.PatientEmail = "sita@example.com"
		assert.NoError(t, ValidateStruct(request))
	})
}
