package schedules

import (
	"context"
	"sync"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository     contracts.ScheduleRepository
	LeaveRepository        contracts.LeaveRepository
	ProfessionalRepository contracts.ProfessionalRepository
	Log                    *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	schedulePostgresRepository contracts.ScheduleRepository,
	leavePostgresRepository contracts.LeaveRepository,
	professionalPostgresRepository contracts.ProfessionalRepository,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			ScheduleRepository:     schedulePostgresRepository,
			LeaveRepository:        leavePostgresRepository,
			ProfessionalRepository: professionalPostgresRepository,
			Log:                    logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, clinicID string, request *requests.CreateSchedule) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingProfessionalIDKey, request.ProfessionalID),
	)

	if err := uc.ensureAffiliated(ctx, clinicID, request.ProfessionalID); err != nil {
		return nil, err
	}

	if utils.TimeToMinutes(request.EndTime) <= utils.TimeToMinutes(request.StartTime) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	effectiveFrom, err := utils.ParseDateYYYYMMDD(request.EffectiveFrom)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	schedule := &models.Schedule{
		ID:                 uuid.NewString(),
		ClinicID:           clinicID,
		ProfessionalID:     request.ProfessionalID,
		DayOfWeek:          request.DayOfWeek,
		StartTime:          request.StartTime,
		EndTime:            request.EndTime,
		MaxPatientsPerSlot: request.MaxPatientsPerSlot,
		EffectiveFrom:      effectiveFrom,
		IsActive:           true,
	}
	if request.EffectiveTo != "" {
		effectiveTo, err := utils.ParseDateYYYYMMDD(request.EffectiveTo)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		schedule.EffectiveTo = &effectiveTo
	}
	schedule.SetCreatedAtUpdatedAt()

	if err := uc.ScheduleRepository.Insert(ctx, schedule); err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedule error inserting schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := buildScheduleResponse(schedule)
	return &response, nil
}

func (uc *scheduleUsecase) ListSchedules(ctx context.Context, clinicID, professionalID string) ([]responses.Schedule, error) {
	schedules, err := uc.ScheduleRepository.FindByClinicAndProfessional(ctx, clinicID, professionalID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Schedule, len(schedules))
	for i := range schedules {
		response[i] = buildScheduleResponse(&schedules[i])
	}
	return response, nil
}

func (uc *scheduleUsecase) DeactivateSchedule(ctx context.Context, clinicID, scheduleID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeactivateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)
	return uc.ScheduleRepository.Deactivate(ctx, clinicID, scheduleID)
}

func (uc *scheduleUsecase) CreateLeave(ctx context.Context, clinicID string, request *requests.CreateLeave) (*responses.Leave, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateLeave called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingProfessionalIDKey, request.ProfessionalID),
	)

	if err := uc.ensureAffiliated(ctx, clinicID, request.ProfessionalID); err != nil {
		return nil, err
	}

	// Partial leaves need both bounds; one without the other is rejected,
	// neither means a full-day leave.
	if (request.StartTime == "") != (request.EndTime == "") {
		return nil, exceptions.ErrInputValidation(nil)
	}
	if request.StartTime != "" && utils.TimeToMinutes(request.EndTime) <= utils.TimeToMinutes(request.StartTime) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	leaveDate, err := utils.ParseDateYYYYMMDD(request.LeaveDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	leave := &models.Leave{
		ID:             uuid.NewString(),
		ClinicID:       clinicID,
		ProfessionalID: request.ProfessionalID,
		LeaveDate:      leaveDate,
		Reason:         request.Reason,
	}
	if request.StartTime != "" {
		startTime := request.StartTime
		endTime := request.EndTime
		leave.StartTime = &startTime
		leave.EndTime = &endTime
	}
	leave.SetCreatedAtUpdatedAt()

	if err := uc.LeaveRepository.Insert(ctx, leave); err != nil {
		uc.Log.Error("scheduleUsecase.CreateLeave error inserting leave",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := buildLeaveResponse(leave)
	return &response, nil
}

func (uc *scheduleUsecase) ListLeaves(ctx context.Context, clinicID, professionalID string) ([]responses.Leave, error) {
	leaves, err := uc.LeaveRepository.FindByClinicAndProfessional(ctx, clinicID, professionalID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Leave, len(leaves))
	for i := range leaves {
		response[i] = buildLeaveResponse(&leaves[i])
	}
	return response, nil
}

func (uc *scheduleUsecase) DeleteLeave(ctx context.Context, clinicID, leaveID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteLeave called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)
	return uc.LeaveRepository.Delete(ctx, clinicID, leaveID)
}

func (uc *scheduleUsecase) ensureAffiliated(ctx context.Context, clinicID, professionalID string) error {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return err
	}
	if professional == nil {
		return exceptions.ErrProfessionalNotFound()
	}

	affiliated, err := uc.ProfessionalRepository.IsAffiliated(ctx, clinicID, professionalID)
	if err != nil {
		return err
	}
	if !affiliated {
		return exceptions.ErrDoctorNotAffiliated()
	}
	return nil
}

func buildScheduleResponse(schedule *models.Schedule) responses.Schedule {
	response := responses.Schedule{
		ID:                 schedule.ID,
		ProfessionalID:     schedule.ProfessionalID,
		DayOfWeek:          schedule.DayOfWeek,
		StartTime:          schedule.StartTime,
		EndTime:            schedule.EndTime,
		MaxPatientsPerSlot: schedule.MaxPatientsPerSlot,
		EffectiveFrom:      schedule.EffectiveFrom.Format("2006-01-02"),
		IsActive:           schedule.IsActive,
	}
	if schedule.EffectiveTo != nil {
		response.EffectiveTo = schedule.EffectiveTo.Format("2006-01-02")
	}
	return response
}

func buildLeaveResponse(leave *models.Leave) responses.Leave {
	response := responses.Leave{
		ID:             leave.ID,
		ProfessionalID: leave.ProfessionalID,
		LeaveDate:      leave.LeaveDate.Format("2006-01-02"),
		Reason:         leave.Reason,
	}
	if leave.StartTime != nil {
		response.StartTime = *leave.StartTime
	}
	if leave.EndTime != nil {
		response.EndTime = *leave.EndTime
	}
	return response
}
