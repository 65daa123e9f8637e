package appointments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClinicRepository struct {
	clinic *models.Clinic
}

func (f *fakeClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	return f.clinic, nil
}

func (f *fakeClinicRepository) Register(ctx context.Context, clinic *models.Clinic, staff *models.ClinicStaff) error {
	return nil
}

func (f *fakeClinicRepository) SetVerified(ctx context.Context, clinicID string, verified bool) error {
	return nil
}

type fakeProfessionalRepository struct {
	professional *models.Professional
	affiliated   bool
}

func (f *fakeProfessionalRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	return f.professional, nil
}

func (f *fakeProfessionalRepository) Search(ctx context.Context, filter *contracts.ProfessionalSearchFilter) ([]models.Professional, int, error) {
	return nil, 0, nil
}

func (f *fakeProfessionalRepository) IsAffiliated(ctx context.Context, clinicID, professionalID string) (bool, error) {
	return f.affiliated, nil
}

func (f *fakeProfessionalRepository) FindAffiliations(ctx context.Context, professionalID string) ([]models.Clinic, error) {
	return nil, nil
}

func (f *fakeProfessionalRepository) SetClaimedBy(ctx context.Context, professionalID, phone string) error {
	return nil
}

type fakeScheduleRepository struct {
	schedules []models.Schedule
}

func (f *fakeScheduleRepository) Insert(ctx context.Context, schedule *models.Schedule) error {
	return nil
}

func (f *fakeScheduleRepository) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleRepository) FindActiveForDay(ctx context.Context, clinicID, professionalID string, dayOfWeek int, date time.Time) ([]models.Schedule, error) {
	var result []models.Schedule
	for i := range f.schedules {
		if f.schedules[i].DayOfWeek == dayOfWeek {
			result = append(result, f.schedules[i])
		}
	}
	return result, nil
}

func (f *fakeScheduleRepository) Deactivate(ctx context.Context, clinicID, scheduleID string) error {
	return nil
}

type fakeLeaveRepository struct {
	leaves []models.Leave
}

func (f *fakeLeaveRepository) Insert(ctx context.Context, leave *models.Leave) error {
	return nil
}

func (f *fakeLeaveRepository) FindForDate(ctx context.Context, clinicID, professionalID string, date time.Time) ([]models.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepository) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, clinicID, leaveID string) error {
	return nil
}

type fakeAppointmentRepository struct {
	activeCount   int
	dayCounts     map[string]int
	dayCountCalls int
	record        *contracts.BookingRecord
	appointments  []models.Appointment
	lastWrite     *contracts.BookingWrite
}

func (f *fakeAppointmentRepository) CountActiveForSlot(ctx context.Context, clinicID, professionalID string, date time.Time, slotStart, slotEnd string) (int, error) {
	return f.activeCount, nil
}

func (f *fakeAppointmentRepository) CountActiveForDay(ctx context.Context, clinicID, professionalID string, date time.Time) (map[string]int, error) {
	f.dayCountCalls++
	return f.dayCounts, nil
}

func (f *fakeAppointmentRepository) CreateBooking(ctx context.Context, write *contracts.BookingWrite) (*contracts.BookingRecord, error) {
	f.lastWrite = write
	return f.record, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID {
			return &f.appointments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepository) FindByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	return nil
}

type fakePatientRepository struct {
	patient *models.Patient
}

func (f *fakePatientRepository) FindByClinicAndPhone(ctx context.Context, clinicID, phone string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patient, nil
}

type fakeLockerService struct {
	acquired bool
	unlocked bool
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return f.acquired, "lock-value", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = true
	return nil
}

type fakeSMSService struct {
	sent []*requests.SMSMessage
}

func (f *fakeSMSService) SendSMS(ctx context.Context, request *requests.SMSMessage) error {
	f.sent = append(f.sent, request)
	return nil
}

type bookingFixture struct {
	usecase      *appointmentUsecase
	clinics      *fakeClinicRepository
	profs        *fakeProfessionalRepository
	schedules    *fakeScheduleRepository
	leaves       *fakeLeaveRepository
	appointments *fakeAppointmentRepository
	locker       *fakeLockerService
	sms          *fakeSMSService
}

func newBookingFixture(bookingDate time.Time) *bookingFixture {
	f := &bookingFixture{
		clinics: &fakeClinicRepository{
			clinic: &models.Clinic{
				ID:       "11111111-1111-1111-1111-111111111111",
				Name:     "Himalaya Clinic",
				Address:  "Lazimpat, Kathmandu",
				Phone:    "014412345",
				Verified: true,
			},
		},
		profs: &fakeProfessionalRepository{
			professional: &models.Professional{
				ID:       "22222222-2222-2222-2222-222222222222",
				FullName: "Dr. Anita Gurung",
				Type:     constvars.ProfessionalTypeDoctor,
			},
			affiliated: true,
		},
		schedules: &fakeScheduleRepository{
			schedules: []models.Schedule{
				{
					ID:                 "33333333-3333-3333-3333-333333333333",
					DayOfWeek:          int(bookingDate.Weekday()),
					StartTime:          "09:00",
					EndTime:            "17:00",
					MaxPatientsPerSlot: 2,
					EffectiveFrom:      bookingDate.AddDate(0, -1, 0),
					IsActive:           true,
				},
			},
		},
		leaves: &fakeLeaveRepository{},
		appointments: &fakeAppointmentRepository{
			record: &contracts.BookingRecord{
				AppointmentID: "44444444-4444-4444-4444-444444444444",
				TokenNumber:   5,
				PatientID:     "55555555-5555-5555-5555-555555555555",
				PatientNumber: "P-000012",
			},
		},
		locker: &fakeLockerService{acquired: true},
		sms:    &fakeSMSService{},
	}
	f.usecase = &appointmentUsecase{
		AppointmentRepository:  f.appointments,
		PatientRepository:      &fakePatientRepository{},
		ClinicRepository:       f.clinics,
		ProfessionalRepository: f.profs,
		ScheduleRepository:     f.schedules,
		LeaveRepository:        f.leaves,
		LockerService:          f.locker,
		SMSService:             f.sms,
		InternalConfig: &config.InternalConfig{
			Booking: config.Booking{
				CutoffMinutes:     15,
				SlotLengthMinutes: 30,
				LockExpirySeconds: 10,
			},
		},
		Log: zap.NewNop(),
	}
	return f
}

func validBookingRequest(date string) *requests.CreateBooking {
	return &requests.CreateBooking{
		ClinicID:     "11111111-1111-1111-1111-111111111111",
		DoctorID:     "22222222-2222-2222-2222-222222222222",
		Date:         date,
		TimeSlot:     "10:00-10:30",
		PatientName:  "Ram Bahadur Thapa",
		PatientPhone: "9841234567",
	}
}

func assertSlotUnavailable(t *testing.T, err error, clientMessage string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.ErrCodeSlotUnavailable, customErr.ErrorCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)
	tomorrowStr := tomorrow.Format("2006-01-02")

	t.Run("books a valid slot and returns the confirmation", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)

		result, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "44444444-4444-4444-4444-444444444444", result.AppointmentID)
		assert.Equal(t, 5, result.TokenNumber)
		assert.Equal(t, tomorrowStr, result.Date)
		assert.Equal(t, "10:00-10:30", result.TimeSlot)
		assert.Equal(t, "Dr. Anita Gurung", result.DoctorName)
		assert.Equal(t, "Himalaya Clinic", result.ClinicName)
		assert.Equal(t, "Ram Bahadur Thapa", result.PatientName)
		assert.True(t, fixture.locker.unlocked)
		require.Len(t, fixture.sms.sent, 1)
		assert.Equal(t, "9841234567", fixture.sms.sent[0].PhoneNumber)
		require.NotNil(t, fixture.appointments.lastWrite)
		assert.Equal(t, 2, fixture.appointments.lastWrite.MaxPatientsPerSlot)
	})

	t.Run("rejects a past date without the slot machine code", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(yesterday))

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, customErr.ErrorCode)
		assert.Equal(t, constvars.ErrClientSlotPastDate, customErr.ClientMessage)
	})

	t.Run("rejects an unknown clinic", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.clinics.clinic = nil

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientClinicNotFound, customErr.ClientMessage)
	})

	t.Run("rejects an unverified clinic", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.clinics.clinic.Verified = false

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrCodeClinicNotVerified, customErr.ErrorCode)
	})

	t.Run("rejects a doctor without an affiliation", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.profs.affiliated = false

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrCodeDoctorNotAffiliated, customErr.ErrorCode)
	})

	t.Run("rejects a day with no schedule", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.schedules.schedules = nil

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotNoSchedule)
	})

	t.Run("rejects a schedule that has not become effective", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.schedules.schedules[0].EffectiveFrom = tomorrow.AddDate(0, 1, 0)

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotNoSchedule)
	})

	t.Run("rejects a slot outside the schedule window", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		request := validBookingRequest(tomorrowStr)
		request.TimeSlot = "18:00-18:30"

		_, err := fixture.usecase.CreateBooking(ctx, request)

		assertSlotUnavailable(t, err, constvars.ErrClientSlotOutsideSchedule)
	})

	t.Run("rejects a slot overlapping a partial-day leave", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		start, end := "10:00", "12:00"
		fixture.leaves.leaves = []models.Leave{{StartTime: &start, EndTime: &end}}

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotDoctorOnLeave)
	})

	t.Run("rejects any slot on a full-day leave", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.leaves.leaves = []models.Leave{{}}

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotDoctorOnLeave)
	})

	t.Run("allows a slot next to a partial-day leave", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		start, end := "10:30", "12:00"
		fixture.leaves.leaves = []models.Leave{{StartTime: &start, EndTime: &end}}

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		require.NoError(t, err)
	})

	t.Run("rejects a fully booked slot", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.appointments.activeCount = 2

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotFullyBooked)
	})

	t.Run("rejects a same-day slot inside the cutoff", func(t *testing.T) {
		fixture := newBookingFixture(time.Now())
		request := validBookingRequest(time.Now().Format("2006-01-02"))
		// one minute from now, always inside the 15 minute cutoff
		soon := time.Now().Add(1 * time.Minute)
		request.TimeSlot = fmt.Sprintf("%02d:%02d-%02d:%02d", soon.Hour(), soon.Minute(), soon.Hour(), soon.Minute())
		fixture.schedules.schedules[0].StartTime = "00:00"
		fixture.schedules.schedules[0].EndTime = "23:59"

		_, err := fixture.usecase.CreateBooking(ctx, request)

		assertSlotUnavailable(t, err, fmt.Sprintf(constvars.ErrClientSlotTooSoon, 15))
	})

	t.Run("rejects a slot while another booking holds the lock", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.locker.acquired = false

		_, err := fixture.usecase.CreateBooking(ctx, validBookingRequest(tomorrowStr))

		assertSlotUnavailable(t, err, constvars.ErrClientSlotBeingBooked)
	})
}

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)
	tomorrowStr := tomorrow.Format("2006-01-02")

	t.Run("generates slots across the schedule window", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.schedules.schedules[0].StartTime = "09:00"
		fixture.schedules.schedules[0].EndTime = "11:00"

		result, err := fixture.usecase.ListSlots(ctx, &requests.ListSlots{
			ClinicID: "11111111-1111-1111-1111-111111111111",
			DoctorID: "22222222-2222-2222-2222-222222222222",
			Date:     tomorrowStr,
		})

		require.NoError(t, err)
		require.Len(t, result.Slots, 4)
		assert.Equal(t, "09:00-09:30", result.Slots[0].TimeSlot)
		assert.Equal(t, "10:30-11:00", result.Slots[3].TimeSlot)
		for _, slot := range result.Slots {
			assert.True(t, slot.Available)
			assert.Equal(t, 2, slot.RemainingCapacity)
		}
		assert.Equal(t, 1, fixture.appointments.dayCountCalls)
	})

	t.Run("marks leave-covered slots unavailable", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.schedules.schedules[0].StartTime = "09:00"
		fixture.schedules.schedules[0].EndTime = "11:00"
		start, end := "09:00", "10:00"
		fixture.leaves.leaves = []models.Leave{{StartTime: &start, EndTime: &end}}

		result, err := fixture.usecase.ListSlots(ctx, &requests.ListSlots{
			ClinicID: "11111111-1111-1111-1111-111111111111",
			DoctorID: "22222222-2222-2222-2222-222222222222",
			Date:     tomorrowStr,
		})

		require.NoError(t, err)
		require.Len(t, result.Slots, 4)
		assert.False(t, result.Slots[0].Available)
		assert.False(t, result.Slots[1].Available)
		assert.True(t, result.Slots[2].Available)
		assert.True(t, result.Slots[3].Available)
	})

	t.Run("marks full slots unavailable but keeps them listed", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.schedules.schedules[0].StartTime = "09:00"
		fixture.schedules.schedules[0].EndTime = "10:00"
		fixture.appointments.dayCounts = map[string]int{"09:00": 2, "09:30": 2}

		result, err := fixture.usecase.ListSlots(ctx, &requests.ListSlots{
			ClinicID: "11111111-1111-1111-1111-111111111111",
			DoctorID: "22222222-2222-2222-2222-222222222222",
			Date:     tomorrowStr,
		})

		require.NoError(t, err)
		require.Len(t, result.Slots, 2)
		for _, slot := range result.Slots {
			assert.False(t, slot.Available)
			assert.Equal(t, 0, slot.RemainingCapacity)
		}
	})

	t.Run("returns an empty list for a past date", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		result, err := fixture.usecase.ListSlots(ctx, &requests.ListSlots{
			ClinicID: "11111111-1111-1111-1111-111111111111",
			DoctorID: "22222222-2222-2222-2222-222222222222",
			Date:     yesterday,
		})

		require.NoError(t, err)
		assert.Empty(t, result.Slots)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)

	appointment := models.Appointment{
		ID:              "44444444-4444-4444-4444-444444444444",
		ClinicID:        "11111111-1111-1111-1111-111111111111",
		ProfessionalID:  "22222222-2222-2222-2222-222222222222",
		PatientID:       "55555555-5555-5555-5555-555555555555",
		AppointmentDate: tomorrow,
		SlotStart:       "10:00",
		SlotEnd:         "10:30",
		Status:          constvars.AppointmentStatusScheduled,
		Type:            constvars.AppointmentTypeNew,
		Source:          constvars.AppointmentSourceOnline,
		TokenNumber:     5,
	}

	t.Run("applies an allowed transition", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.appointments.appointments = []models.Appointment{appointment}

		result, err := fixture.usecase.UpdateStatus(ctx,
			appointment.ClinicID, appointment.ID,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCheckedIn})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCheckedIn, result.Status)
	})

	t.Run("rejects a disallowed transition", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.appointments.appointments = []models.Appointment{appointment}

		_, err := fixture.usecase.UpdateStatus(ctx,
			appointment.ClinicID, appointment.ID,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrCodeInvalidStatusTransition, customErr.ErrorCode)
	})

	t.Run("hides appointments belonging to another clinic", func(t *testing.T) {
		fixture := newBookingFixture(tomorrow)
		fixture.appointments.appointments = []models.Appointment{appointment}

		_, err := fixture.usecase.UpdateStatus(ctx,
			"99999999-9999-9999-9999-999999999999", appointment.ID,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCheckedIn})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
