package contracts

import (
	"context"
	"time"

	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
)

// BookingWrite is everything the repository needs to persist a validated
// booking. Capacity is re-checked inside the repository's transaction, so a
// lost race surfaces as ErrSlotFullyBooked rather than an over-booked slot.
type BookingWrite struct {
	ClinicID           string
	ProfessionalID     string
	Date               time.Time
	SlotStart          string
	SlotEnd            string
	MaxPatientsPerSlot int
	PatientName        string
	PatientPhone       string
	PatientEmail       *string
	ChiefComplaint     *string
}

// BookingRecord is what the transaction produced.
type BookingRecord struct {
	AppointmentID string
	TokenNumber   int
	PatientID     string
	PatientNumber string
}

type AppointmentRepository interface {
	CountActiveForSlot(ctx context.Context, clinicID, professionalID string, date time.Time, slotStart, slotEnd string) (int, error)
	// CountActiveForDay returns active bookings per slot_start for one day.
	CountActiveForDay(ctx context.Context, clinicID, professionalID string, date time.Time) (map[string]int, error)
	// CreateBooking runs the serializable count-upsert-insert transaction.
	CreateBooking(ctx context.Context, write *BookingWrite) (*BookingRecord, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

type PatientRepository interface {
	FindByClinicAndPhone(ctx context.Context, clinicID, phone string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}

type AppointmentUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingConfirmation, error)
	ListSlots(ctx context.Context, request *requests.ListSlots) (*responses.DaySlots, error)
	ListByDate(ctx context.Context, clinicID string, date string) ([]responses.Appointment, error)
	UpdateStatus(ctx context.Context, clinicID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}
