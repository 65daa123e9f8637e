package clinics

import (
	"context"
	"fmt"
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

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	MailerService    contracts.MailerService
	Log              *zap.Logger
}

var (
	clinicUsecaseInstance contracts.ClinicUsecase
	onceClinicUsecase     sync.Once
)

func NewClinicUsecase(
	clinicPostgresRepository contracts.ClinicRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.ClinicUsecase {
	onceClinicUsecase.Do(func() {
		instance := &clinicUsecase{
			ClinicRepository: clinicPostgresRepository,
			MailerService:    mailerService,
			Log:              logger,
		}
		clinicUsecaseInstance = instance
	})
	return clinicUsecaseInstance
}

// Register creates an unverified clinic plus its first staff login. The
// clinic stays invisible to booking until a superadmin verifies it.
func (uc *clinicUsecase) Register(ctx context.Context, request *requests.RegisterClinic) (*responses.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	passwordHash, err := utils.HashPassword(request.StaffPassword)
	if err != nil {
		return nil, err
	}

	clinic := &models.Clinic{
		ID:      uuid.NewString(),
		Name:    request.Name,
		NameNe:  request.NameNe,
		Address: request.Address,
		City:    request.City,
		Phone:   request.Phone,
		Email:   request.Email,
	}
	clinic.SetCreatedAtUpdatedAt()

	staff := &models.ClinicStaff{
		ID:           uuid.NewString(),
		ClinicID:     clinic.ID,
		Email:        request.Email,
		PasswordHash: passwordHash,
		FullName:     request.StaffFullName,
		Role:         constvars.SwasthyaRoleClinicStaff,
	}
	staff.SetCreatedAtUpdatedAt()

	if err := uc.ClinicRepository.Register(ctx, clinic, staff); err != nil {
		uc.Log.Error("clinicUsecase.Register error inserting clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("clinicUsecase.Register clinic created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinic.ID),
	)

	response := buildClinicResponse(clinic)
	return &response, nil
}

func (uc *clinicUsecase) FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound()
	}

	response := buildClinicResponse(clinic)
	return &response, nil
}

func (uc *clinicUsecase) Verify(ctx context.Context, clinicID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return err
	}
	if clinic == nil {
		return exceptions.ErrClinicNotFound()
	}

	if err := uc.ClinicRepository.SetVerified(ctx, clinicID, true); err != nil {
		return err
	}

	// best-effort notification, verification itself is already committed
	if clinic.Email != "" {
		if err := uc.MailerService.SendEmail(ctx, &requests.EmailMessage{
			ReceiverEmail: clinic.Email,
			Subject:       "Your clinic has been verified",
			Body:          fmt.Sprintf("Hello %s, your clinic is now verified and visible in the directory. Patients can book appointments online starting today.", clinic.Name),
		}); err != nil {
			uc.Log.Error("clinicUsecase.Verify error publishing verification email",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func buildClinicResponse(clinic *models.Clinic) responses.Clinic {
	return responses.Clinic{
		ID:       clinic.ID,
		Name:     clinic.Name,
		NameNe:   clinic.NameNe,
		Address:  clinic.Address,
		City:     clinic.City,
		Phone:    clinic.Phone,
		Email:    clinic.Email,
		Verified: clinic.Verified,
	}
}
