package contracts

import (
	"context"

	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
)

type ClinicRepository interface {
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	// Register inserts the clinic and its first staff account in one transaction.
	Register(ctx context.Context, clinic *models.Clinic, staff *models.ClinicStaff) error
	SetVerified(ctx context.Context, clinicID string, verified bool) error
}

type ClinicStaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.ClinicStaff, error)
}

type ClinicUsecase interface {
	Register(ctx context.Context, request *requests.RegisterClinic) (*responses.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error)
	Verify(ctx context.Context, clinicID string) error
}
