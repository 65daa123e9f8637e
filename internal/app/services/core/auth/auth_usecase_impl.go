package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/app/services/shared/ratelimiter"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	SessionRepository     contracts.SessionRepository
	ClinicStaffRepository contracts.ClinicStaffRepository
	RedisRepository       contracts.RedisRepository
	ResourceLimiter       *ratelimiter.ResourceLimiter
	SMSService            contracts.SMSService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAuthUsecase(
	sessionRepository contracts.SessionRepository,
	clinicStaffPostgresRepository contracts.ClinicStaffRepository,
	redisRepository contracts.RedisRepository,
	resourceLimiter *ratelimiter.ResourceLimiter,
	smsService contracts.SMSService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			SessionRepository:     sessionRepository,
			ClinicStaffRepository: clinicStaffPostgresRepository,
			RedisRepository:       redisRepository,
			ResourceLimiter:       resourceLimiter,
			SMSService:            smsService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RequestOTP(ctx context.Context, request *requests.RequestOTP) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RequestOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      request.Phone,
		LimiterGroupName:  constvars.OTPLimiterGroupName,
		WindowDurationSec: uc.InternalConfig.OTP.WindowDurationSec,
		MaxQuota:          uc.InternalConfig.OTP.MaxRequestsPerWindow,
	})
	if err != nil {
		return err
	}
	if !limit.Allowed {
		return exceptions.ErrTooManyOTPRequests(limit.RetryAfterSecs)
	}

	otp, err := utils.GenerateOTP(uc.InternalConfig.OTP.Length)
	if err != nil {
		return err
	}

	otpKey := fmt.Sprintf(constvars.RedisKeyOTPFormat, request.Phone)
	otpTTL := time.Duration(uc.InternalConfig.OTP.ExpiryTimeInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, otpKey, otp, otpTTL); err != nil {
		return err
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		otp, uc.InternalConfig.OTP.ExpiryTimeInMinute)
	if err := uc.SMSService.SendSMS(ctx, &requests.SMSMessage{
		PhoneNumber: request.Phone,
		Message:     message,
	}); err != nil {
		return err
	}

	uc.Log.Info("authUsecase.RequestOTP code issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.AuthSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	otpKey := fmt.Sprintf(constvars.RedisKeyOTPFormat, request.Phone)
	stored, err := uc.RedisRepository.Get(ctx, otpKey)
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return nil, exceptions.ErrOTPExpired(nil)
	}
	// the repository JSON-marshals values, so the stored code is quoted
	if stored != fmt.Sprintf("%q", request.OTP) {
		return nil, exceptions.ErrOTPInvalid(nil)
	}

	if err := uc.RedisRepository.Delete(ctx, otpKey); err != nil {
		return nil, err
	}

	return uc.createSession(ctx, &models.Session{
		SessionID: uuid.NewString(),
		Role:      constvars.SwasthyaRolePatient,
		Phone:     request.Phone,
	})
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.StaffLogin) (*responses.AuthSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	staff, err := uc.ClinicStaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}
	if !utils.CheckPassword(staff.PasswordHash, request.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	return uc.createSession(ctx, &models.Session{
		SessionID: uuid.NewString(),
		Role:      staff.Role,
		StaffID:   staff.ID,
		ClinicID:  staff.ClinicID,
	})
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionRepository.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) createSession(ctx context.Context, session *models.Session) (*responses.AuthSession, error) {
	session.ExpiresAt = time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour)

	if err := uc.SessionRepository.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(uc.InternalConfig.JWT.Secret, session.SessionID, session.Role, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.AuthSession{
		Token:     token,
		Role:      session.Role,
		ClinicID:  session.ClinicID,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	}, nil
}
