package professionals

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/queries"
)

type claimPostgresRepository struct {
	DB *sql.DB
}

var (
	claimPostgresRepositoryInstance contracts.ClaimRepository
	onceClaimPostgresRepository     sync.Once
)

func NewClaimPostgresRepository(db *sql.DB) contracts.ClaimRepository {
	onceClaimPostgresRepository.Do(func() {
		claimPostgresRepositoryInstance = &claimPostgresRepository{DB: db}
	})
	return claimPostgresRepositoryInstance
}

func (repo *claimPostgresRepository) Insert(ctx context.Context, claim *models.ClaimRequest) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertClaimRequest,
		claim.ID,
		claim.ProfessionalID,
		claim.Phone,
		claim.CouncilNumber,
		claim.DocumentKey,
		claim.Status,
		claim.CreatedAt,
		claim.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *claimPostgresRepository) FindByID(ctx context.Context, claimID string) (*models.ClaimRequest, error) {
	return repo.scanOne(ctx, queries.GetClaimRequestByID, claimID)
}

func (repo *claimPostgresRepository) FindPendingByProfessional(ctx context.Context, professionalID string) (*models.ClaimRequest, error) {
	return repo.scanOne(ctx, queries.GetPendingClaimByProfessional, professionalID)
}

func (repo *claimPostgresRepository) UpdateStatus(ctx context.Context, claimID, status string) error {
	now := time.Now()
	_, err := repo.DB.ExecContext(ctx, queries.UpdateClaimRequestStatus, status, now, now, claimID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *claimPostgresRepository) scanOne(ctx context.Context, query, arg string) (*models.ClaimRequest, error) {
	var claim models.ClaimRequest
	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&claim.ID,
		&claim.ProfessionalID,
		&claim.Phone,
		&claim.CouncilNumber,
		&claim.DocumentKey,
		&claim.Status,
		&claim.DecidedAt,
		&claim.CreatedAt,
		&claim.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &claim, nil
}
