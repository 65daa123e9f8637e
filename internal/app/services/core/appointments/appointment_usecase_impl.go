package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	PatientRepository      contracts.PatientRepository
	ClinicRepository       contracts.ClinicRepository
	ProfessionalRepository contracts.ProfessionalRepository
	ScheduleRepository     contracts.ScheduleRepository
	LeaveRepository        contracts.LeaveRepository
	LockerService          contracts.LockerService
	SMSService             contracts.SMSService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentPostgresRepository contracts.AppointmentRepository,
	patientPostgresRepository contracts.PatientRepository,
	clinicPostgresRepository contracts.ClinicRepository,
	professionalPostgresRepository contracts.ProfessionalRepository,
	schedulePostgresRepository contracts.ScheduleRepository,
	leavePostgresRepository contracts.LeaveRepository,
	lockerService contracts.LockerService,
	smsService contracts.SMSService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository:  appointmentPostgresRepository,
			PatientRepository:      patientPostgresRepository,
			ClinicRepository:       clinicPostgresRepository,
			ProfessionalRepository: professionalPostgresRepository,
			ScheduleRepository:     schedulePostgresRepository,
			LeaveRepository:        leavePostgresRepository,
			LockerService:          lockerService,
			SMSService:             smsService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// slotContext carries everything the booking pipeline resolves while walking
// its checks, so later steps don't re-fetch.
type slotContext struct {
	Clinic       *models.Clinic
	Professional *models.Professional
	Schedule     *models.Schedule
	Date         time.Time
	SlotStart    string
	SlotEnd      string
	StartMinutes int
	EndMinutes   int
}

// CreateBooking walks the full validation pipeline in a fixed order, takes a
// redis lock over the slot, and hands off to the repository's transaction.
// The ordering matters: a request failing several checks must always report
// the earliest one.
func (uc *appointmentUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingConfirmation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingProfessionalIDKey, request.DoctorID),
	)

	slot, err := uc.resolveSlot(ctx, request.ClinicID, request.DoctorID, request.Date, request.TimeSlot)
	if err != nil {
		return nil, err
	}

	if err := uc.checkCapacity(ctx, slot); err != nil {
		return nil, err
	}
	if err := uc.checkCutoff(slot); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyBookingLockFormat,
		request.ClinicID, request.DoctorID, request.Date, slot.SlotStart)
	lockExpiry := time.Duration(uc.InternalConfig.Booking.LockExpirySeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotUnavailable(constvars.ErrClientSlotBeingBooked)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.CreateBooking error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	record, err := uc.AppointmentRepository.CreateBooking(ctx, &contracts.BookingWrite{
		ClinicID:           request.ClinicID,
		ProfessionalID:     request.DoctorID,
		Date:               slot.Date,
		SlotStart:          slot.SlotStart,
		SlotEnd:            slot.SlotEnd,
		MaxPatientsPerSlot: slot.Schedule.MaxPatientsPerSlot,
		PatientName:        request.PatientName,
		PatientPhone:       request.PatientPhone,
		PatientEmail:       optionalString(request.PatientEmail),
		ChiefComplaint:     optionalString(request.ChiefComplaint),
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateBooking booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, record.AppointmentID),
	)

	uc.sendBookingSMS(ctx, request, slot, record)

	return &responses.BookingConfirmation{
		Success:       true,
		AppointmentID: record.AppointmentID,
		TokenNumber:   record.TokenNumber,
		Date:          request.Date,
		TimeSlot:      request.TimeSlot,
		DoctorName:    slot.Professional.FullName,
		DoctorType:    slot.Professional.Type,
		ClinicName:    slot.Clinic.Name,
		ClinicAddress: slot.Clinic.Address,
		ClinicPhone:   slot.Clinic.Phone,
		PatientName:   request.PatientName,
		PatientPhone:  request.PatientPhone,
	}, nil
}

// resolveSlot runs the shared front half of the pipeline: date sanity, clinic
// verification, affiliation, schedule resolution, slot bounds, leave overlap.
func (uc *appointmentUsecase) resolveSlot(ctx context.Context, clinicID, professionalID, dateStr, timeSlot string) (*slotContext, error) {
	date, err := utils.ParseDateYYYYMMDD(dateStr)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if date.Before(utils.StartOfToday()) {
		return nil, exceptions.ErrPastBookingDate()
	}

	slotStart, slotEnd, err := utils.ParseTimeSlot(timeSlot)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound()
	}
	if !clinic.Verified {
		return nil, exceptions.ErrClinicNotVerified()
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound()
	}

	affiliated, err := uc.ProfessionalRepository.IsAffiliated(ctx, clinicID, professionalID)
	if err != nil {
		return nil, err
	}
	if !affiliated {
		return nil, exceptions.ErrDoctorNotAffiliated()
	}

	schedules, err := uc.ScheduleRepository.FindActiveForDay(ctx, clinicID, professionalID, int(date.Weekday()), date)
	if err != nil {
		return nil, err
	}

	var covering []models.Schedule
	for i := range schedules {
		if schedules[i].CoversDate(date) {
			covering = append(covering, schedules[i])
		}
	}
	if len(covering) == 0 {
		return nil, exceptions.ErrSlotUnavailable(constvars.ErrClientSlotNoSchedule)
	}

	startMinutes := utils.TimeToMinutes(slotStart)
	endMinutes := utils.TimeToMinutes(slotEnd)

	var schedule *models.Schedule
	for i := range covering {
		if startMinutes >= utils.TimeToMinutes(covering[i].StartTime) &&
			endMinutes <= utils.TimeToMinutes(covering[i].EndTime) {
			schedule = &covering[i]
			break
		}
	}
	if schedule == nil {
		return nil, exceptions.ErrSlotUnavailable(constvars.ErrClientSlotOutsideSchedule)
	}

	leaves, err := uc.LeaveRepository.FindForDate(ctx, clinicID, professionalID, date)
	if err != nil {
		return nil, err
	}
	for i := range leaves {
		if utils.IsSlotDuringLeave(startMinutes, endMinutes, leaves[i].StartTime, leaves[i].EndTime) {
			return nil, exceptions.ErrSlotUnavailable(constvars.ErrClientSlotDoctorOnLeave)
		}
	}

	return &slotContext{
		Clinic:       clinic,
		Professional: professional,
		Schedule:     schedule,
		Date:         date,
		SlotStart:    slotStart,
		SlotEnd:      slotEnd,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
	}, nil
}

func (uc *appointmentUsecase) checkCapacity(ctx context.Context, slot *slotContext) error {
	count, err := uc.AppointmentRepository.CountActiveForSlot(ctx, slot.Clinic.ID, slot.Professional.ID, slot.Date, slot.SlotStart, slot.SlotEnd)
	if err != nil {
		return err
	}
	if count >= slot.Schedule.MaxPatientsPerSlot {
		return exceptions.ErrSlotUnavailable(constvars.ErrClientSlotFullyBooked)
	}
	return nil
}

// checkCutoff blocks same-day bookings that start too close to now. The
// comparison uses local wall-clock minutes, same as the rest of the system.
func (uc *appointmentUsecase) checkCutoff(slot *slotContext) error {
	if !slot.Date.Equal(utils.StartOfToday()) {
		return nil
	}
	cutoff := uc.InternalConfig.Booking.CutoffMinutes
	if slot.StartMinutes < utils.MinutesSinceMidnight(time.Now())+cutoff {
		return exceptions.ErrSlotUnavailable(fmt.Sprintf(constvars.ErrClientSlotTooSoon, cutoff))
	}
	return nil
}

// sendBookingSMS is best-effort: a queue outage must not fail a booking that
// is already committed.
func (uc *appointmentUsecase) sendBookingSMS(ctx context.Context, request *requests.CreateBooking, slot *slotContext, record *contracts.BookingRecord) {
	message := fmt.Sprintf("Appointment confirmed at %s with %s on %s (%s). Your token number is %d.",
		slot.Clinic.Name, slot.Professional.FullName, request.Date, request.TimeSlot, record.TokenNumber)
	if err := uc.SMSService.SendSMS(ctx, &requests.SMSMessage{
		PhoneNumber: request.PatientPhone,
		Message:     message,
	}); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("appointmentUsecase.sendBookingSMS error publishing confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) ListSlots(ctx context.Context, request *requests.ListSlots) (*responses.DaySlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingProfessionalIDKey, request.DoctorID),
	)

	date, err := utils.ParseDateYYYYMMDD(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound()
	}

	response := &responses.DaySlots{
		ClinicID:       request.ClinicID,
		ProfessionalID: request.DoctorID,
		Date:           request.Date,
		Slots:          []responses.Slot{},
	}

	if date.Before(utils.StartOfToday()) {
		return response, nil
	}

	schedules, err := uc.ScheduleRepository.FindActiveForDay(ctx, request.ClinicID, request.DoctorID, int(date.Weekday()), date)
	if err != nil {
		return nil, err
	}

	leaves, err := uc.LeaveRepository.FindForDate(ctx, request.ClinicID, request.DoctorID, date)
	if err != nil {
		return nil, err
	}

	counts, err := uc.AppointmentRepository.CountActiveForDay(ctx, request.ClinicID, request.DoctorID, date)
	if err != nil {
		return nil, err
	}

	slotLength := uc.InternalConfig.Booking.SlotLengthMinutes
	cutoff := uc.InternalConfig.Booking.CutoffMinutes
	sameDay := date.Equal(utils.StartOfToday())
	nowMinutes := utils.MinutesSinceMidnight(time.Now())

	for i := range schedules {
		if !schedules[i].CoversDate(date) {
			continue
		}
		schedStart := utils.TimeToMinutes(schedules[i].StartTime)
		schedEnd := utils.TimeToMinutes(schedules[i].EndTime)

		for start := schedStart; start+slotLength <= schedEnd; start += slotLength {
			end := start + slotLength
			slotStart := fmt.Sprintf("%02d:%02d", start/60, start%60)
			slotEnd := fmt.Sprintf("%02d:%02d", end/60, end%60)

			onLeave := false
			for j := range leaves {
				if utils.IsSlotDuringLeave(start, end, leaves[j].StartTime, leaves[j].EndTime) {
					onLeave = true
					break
				}
			}

			remaining := schedules[i].MaxPatientsPerSlot - counts[slotStart]
			if remaining < 0 {
				remaining = 0
			}

			tooSoon := sameDay && start < nowMinutes+cutoff

			response.Slots = append(response.Slots, responses.Slot{
				TimeSlot:          slotStart + "-" + slotEnd,
				RemainingCapacity: remaining,
				Available:         remaining > 0 && !onLeave && !tooSoon,
			})
		}
	}

	return response, nil
}

func (uc *appointmentUsecase) ListByDate(ctx context.Context, clinicID string, dateStr string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	date, err := utils.ParseDateYYYYMMDD(dateStr)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointments, err := uc.AppointmentRepository.FindByClinicAndDate(ctx, clinicID, date)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, len(appointments))
	for i := range appointments {
		response[i] = uc.buildAppointmentResponse(ctx, &appointments[i])
	}
	return response, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, clinicID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.ClinicID != clinicID {
		return nil, exceptions.ErrAppointmentNotFound()
	}

	if !models.CanTransitionAppointmentStatus(appointment.Status, request.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(appointment.Status, request.Status)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status); err != nil {
		return nil, err
	}
	appointment.Status = request.Status

	result := uc.buildAppointmentResponse(ctx, appointment)
	return &result, nil
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) responses.Appointment {
	response := responses.Appointment{
		ID:             appointment.ID,
		ProfessionalID: appointment.ProfessionalID,
		PatientID:      appointment.PatientID,
		Date:           appointment.AppointmentDate.Format("2006-01-02"),
		TimeSlot:       appointment.SlotStart + "-" + appointment.SlotEnd,
		Status:         appointment.Status,
		Type:           appointment.Type,
		Source:         appointment.Source,
		TokenNumber:    appointment.TokenNumber,
	}
	if appointment.ChiefComplaint != nil {
		response.ChiefComplaint = *appointment.ChiefComplaint
	}

	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err == nil && patient != nil {
		response.PatientName = patient.FullName
		response.PatientPhone = patient.Phone
	}
	return response
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
