package professionals

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type professionalUsecase struct {
	ProfessionalRepository contracts.ProfessionalRepository
	ClaimRepository        contracts.ClaimRepository
	RedisRepository        contracts.RedisRepository
	StorageService         contracts.StorageService
	SMSService             contracts.SMSService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	professionalUsecaseInstance contracts.ProfessionalUsecase
	onceProfessionalUsecase     sync.Once
)

func NewProfessionalUsecase(
	professionalPostgresRepository contracts.ProfessionalRepository,
	claimPostgresRepository contracts.ClaimRepository,
	redisRepository contracts.RedisRepository,
	storageService contracts.StorageService,
	smsService contracts.SMSService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfessionalUsecase {
	onceProfessionalUsecase.Do(func() {
		instance := &professionalUsecase{
			ProfessionalRepository: professionalPostgresRepository,
			ClaimRepository:        claimPostgresRepository,
			RedisRepository:        redisRepository,
			StorageService:         storageService,
			SMSService:             smsService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		professionalUsecaseInstance = instance
	})
	return professionalUsecaseInstance
}

// cachedSearch is the redis payload for one directory search result page.
type cachedSearch struct {
	Items []models.Professional `json:"items"`
	Total int                   `json:"total"`
}

func (uc *professionalUsecase) Search(ctx context.Context, filter *contracts.ProfessionalSearchFilter, baseURL string) ([]responses.Professional, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyDirectoryCache,
		fmt.Sprintf("%s|%s|%s|%d|%d", strings.ToLower(filter.Query), filter.Type, strings.ToLower(filter.City), filter.Page, filter.PageSize),
	)

	var result cachedSearch

	cachedData, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("professionalUsecase.Search error reading directory cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	if cachedData == "" {
		professionals, total, err := uc.ProfessionalRepository.Search(ctx, filter)
		if err != nil {
			uc.Log.Error("professionalUsecase.Search error searching repository",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, nil, err
		}
		result = cachedSearch{Items: professionals, Total: total}

		cacheTTL := time.Duration(uc.InternalConfig.Booking.DirectoryCacheTTL) * time.Second
		if err := uc.RedisRepository.Set(ctx, cacheKey, result, cacheTTL); err != nil {
			uc.Log.Error("professionalUsecase.Search error caching directory page",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, nil, err
		}
	} else {
		if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
			return nil, nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.Professional, len(result.Items))
	for i, professional := range result.Items {
		response[i] = buildProfessionalResponse(&professional)
	}

	pagination := utils.BuildPaginationResponse(result.Total, filter.Page, filter.PageSize, baseURL)
	return response, pagination, nil
}

func (uc *professionalUsecase) FindDetail(ctx context.Context, professionalID string) (*responses.ProfessionalDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.FindDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)

	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound()
	}

	clinics, err := uc.ProfessionalRepository.FindAffiliations(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	detail := &responses.ProfessionalDetail{
		Professional:  buildProfessionalResponse(professional),
		CouncilNumber: professional.CouncilNumber,
		Clinics:       make([]responses.Clinic, 0, len(clinics)),
	}
	for _, clinic := range clinics {
		// Unverified clinics stay out of the public directory.
		if !clinic.Verified {
			continue
		}
		detail.Clinics = append(detail.Clinics, responses.Clinic{
			ID:       clinic.ID,
			Name:     clinic.Name,
			NameNe:   clinic.NameNe,
			Address:  clinic.Address,
			City:     clinic.City,
			Phone:    clinic.Phone,
			Verified: clinic.Verified,
		})
	}

	return detail, nil
}

func (uc *professionalUsecase) ClaimUploadURL(ctx context.Context, professionalID, phone string) (*responses.ClaimUploadURL, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.ClaimUploadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)

	if err := uc.ensureClaimable(ctx, professionalID); err != nil {
		return nil, err
	}

	documentKey := fmt.Sprintf("claims/%s/%s", professionalID, uuid.NewString())
	expiry := time.Duration(uc.InternalConfig.App.ClaimDocumentURLExpiryMin) * time.Minute

	uploadURL, err := uc.StorageService.PresignedPutURL(ctx, documentKey, expiry)
	if err != nil {
		uc.Log.Error("professionalUsecase.ClaimUploadURL error presigning upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.ClaimUploadURL{
		UploadURL:   uploadURL,
		DocumentKey: documentKey,
		ExpiresInS:  int(expiry.Seconds()),
	}, nil
}

func (uc *professionalUsecase) SubmitClaim(ctx context.Context, professionalID, phone string, request *requests.SubmitClaim) (*responses.Claim, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.SubmitClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)

	if err := uc.ensureClaimable(ctx, professionalID); err != nil {
		return nil, err
	}

	claim := &models.ClaimRequest{
		ID:             uuid.NewString(),
		ProfessionalID: professionalID,
		Phone:          phone,
		CouncilNumber:  request.CouncilNumber,
		DocumentKey:    request.DocumentKey,
		Status:         constvars.ClaimStatusPending,
	}
	claim.SetCreatedAtUpdatedAt()

	if err := uc.ClaimRepository.Insert(ctx, claim); err != nil {
		uc.Log.Error("professionalUsecase.SubmitClaim error inserting claim",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Claim{
		ID:             claim.ID,
		ProfessionalID: claim.ProfessionalID,
		Status:         claim.Status,
	}, nil
}

func (uc *professionalUsecase) DecideClaim(ctx context.Context, claimID string, request *requests.DecideClaim) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.DecideClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	claim, err := uc.ClaimRepository.FindByID(ctx, claimID)
	if err != nil {
		return err
	}
	if claim == nil || claim.Status != constvars.ClaimStatusPending {
		return exceptions.ErrClaimNotFound()
	}

	if request.Decision == constvars.ClaimStatusApproved {
		if err := uc.ProfessionalRepository.SetClaimedBy(ctx, claim.ProfessionalID, claim.Phone); err != nil {
			return err
		}
	}

	if err := uc.ClaimRepository.UpdateStatus(ctx, claimID, request.Decision); err != nil {
		return err
	}

	uc.sendClaimDecisionSMS(ctx, claim, request.Decision)

	return nil
}

// FindClaimDetail loads one claim for admin review, with a short-lived
// presigned URL on the supporting document.
func (uc *professionalUsecase) FindClaimDetail(ctx context.Context, claimID string) (*responses.ClaimDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.FindClaimDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	claim, err := uc.ClaimRepository.FindByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, exceptions.ErrClaimNotFound()
	}

	expiry := time.Duration(uc.InternalConfig.App.ClaimDocumentURLExpiryMin) * time.Minute
	documentURL, err := uc.StorageService.PresignedGetURL(ctx, claim.DocumentKey, expiry)
	if err != nil {
		uc.Log.Error("professionalUsecase.FindClaimDetail error presigning document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.ClaimDetail{
		Claim: responses.Claim{
			ID:             claim.ID,
			ProfessionalID: claim.ProfessionalID,
			Status:         claim.Status,
		},
		Phone:         claim.Phone,
		CouncilNumber: claim.CouncilNumber,
		DocumentURL:   documentURL,
	}, nil
}

// sendClaimDecisionSMS is best-effort: the decision is already committed, a
// queue outage only loses the notification.
func (uc *professionalUsecase) sendClaimDecisionSMS(ctx context.Context, claim *models.ClaimRequest, decision string) {
	message := "Your profile claim request has been approved. You now own your directory profile."
	if decision != constvars.ClaimStatusApproved {
		message = "Your profile claim request has been rejected. Contact support if you believe this is a mistake."
	}
	if err := uc.SMSService.SendSMS(ctx, &requests.SMSMessage{
		PhoneNumber: claim.Phone,
		Message:     message,
	}); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("professionalUsecase.sendClaimDecisionSMS error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// ensureClaimable rejects claims over profiles that are already owned or
// already under review.
func (uc *professionalUsecase) ensureClaimable(ctx context.Context, professionalID string) error {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return err
	}
	if professional == nil {
		return exceptions.ErrProfessionalNotFound()
	}
	if professional.ClaimedBy != nil {
		return exceptions.ErrProfileAlreadyClaimed()
	}

	pending, err := uc.ClaimRepository.FindPendingByProfessional(ctx, professionalID)
	if err != nil {
		return err
	}
	if pending != nil {
		return exceptions.ErrClaimAlreadyPending()
	}
	return nil
}

func buildProfessionalResponse(professional *models.Professional) responses.Professional {
	return responses.Professional{
		ID:         professional.ID,
		FullName:   professional.FullName,
		FullNameNe: professional.FullNameNe,
		Type:       professional.Type,
		Specialty:  professional.Specialty,
		City:       professional.City,
		Claimed:    professional.ClaimedBy != nil,
	}
}
