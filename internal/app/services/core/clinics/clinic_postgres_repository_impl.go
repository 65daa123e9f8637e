package clinics

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type clinicPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	clinicPostgresRepositoryInstance contracts.ClinicRepository
	onceClinicPostgresRepository     sync.Once
)

func NewClinicPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ClinicRepository {
	onceClinicPostgresRepository.Do(func() {
		instance := &clinicPostgresRepository{
			DB:  db,
			Log: logger,
		}
		clinicPostgresRepositoryInstance = instance
	})
	return clinicPostgresRepositoryInstance
}

func (repo *clinicPostgresRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	query := queries.GetClinicByID
	var clinic models.Clinic
	err := repo.DB.QueryRowContext(ctx, query, clinicID).Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.NameNe,
		&clinic.Address,
		&clinic.City,
		&clinic.Phone,
		&clinic.Email,
		&clinic.Verified,
		&clinic.PatientSeq,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &clinic, nil
}

func (repo *clinicPostgresRepository) Register(ctx context.Context, clinic *models.Clinic, staff *models.ClinicStaff) error {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queries.InsertClinic,
		clinic.ID,
		clinic.Name,
		clinic.NameNe,
		clinic.Address,
		clinic.City,
		clinic.Phone,
		clinic.Email,
		clinic.CreatedAt,
		clinic.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	_, err = tx.ExecContext(ctx, queries.InsertClinicStaff,
		staff.ID,
		staff.ClinicID,
		staff.Email,
		staff.PasswordHash,
		staff.FullName,
		staff.Role,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}

func (repo *clinicPostgresRepository) SetVerified(ctx context.Context, clinicID string, verified bool) error {
	_, err := repo.DB.ExecContext(ctx, queries.SetClinicVerified, verified, time.Now(), clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
