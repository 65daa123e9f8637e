package contracts

import (
	"context"

	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
)

// ProfessionalSearchFilter narrows a directory search. Zero values mean "any".
type ProfessionalSearchFilter struct {
	Query    string
	Type     string
	City     string
	Page     int
	PageSize int
}

type ProfessionalRepository interface {
	FindByID(ctx context.Context, professionalID string) (*models.Professional, error)
	Search(ctx context.Context, filter *ProfessionalSearchFilter) ([]models.Professional, int, error)
	IsAffiliated(ctx context.Context, clinicID, professionalID string) (bool, error)
	FindAffiliations(ctx context.Context, professionalID string) ([]models.Clinic, error)
	SetClaimedBy(ctx context.Context, professionalID, phone string) error
}

type ClaimRepository interface {
	Insert(ctx context.Context, claim *models.ClaimRequest) error
	FindByID(ctx context.Context, claimID string) (*models.ClaimRequest, error)
	FindPendingByProfessional(ctx context.Context, professionalID string) (*models.ClaimRequest, error)
	UpdateStatus(ctx context.Context, claimID, status string) error
}

type ProfessionalUsecase interface {
	Search(ctx context.Context, filter *ProfessionalSearchFilter, baseURL string) ([]responses.Professional, *responses.Pagination, error)
	FindDetail(ctx context.Context, professionalID string) (*responses.ProfessionalDetail, error)
	SubmitClaim(ctx context.Context, professionalID, phone string, request *requests.SubmitClaim) (*responses.Claim, error)
	ClaimUploadURL(ctx context.Context, professionalID, phone string) (*responses.ClaimUploadURL, error)
	DecideClaim(ctx context.Context, claimID string, request *requests.DecideClaim) error
	FindClaimDetail(ctx context.Context, claimID string) (*responses.ClaimDetail, error)
}
