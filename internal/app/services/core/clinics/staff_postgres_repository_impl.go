package clinics

import (
	"context"
	"database/sql"
	"sync"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/queries"
)

type staffPostgresRepository struct {
	DB *sql.DB
}

var (
	staffPostgresRepositoryInstance contracts.ClinicStaffRepository
	onceStaffPostgresRepository     sync.Once
)

func NewStaffPostgresRepository(db *sql.DB) contracts.ClinicStaffRepository {
	onceStaffPostgresRepository.Do(func() {
		staffPostgresRepositoryInstance = &staffPostgresRepository{DB: db}
	})
	return staffPostgresRepositoryInstance
}

func (repo *staffPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.ClinicStaff, error) {
	query := queries.GetClinicStaffByEmail
	var staff models.ClinicStaff
	err := repo.DB.QueryRowContext(ctx, query, email).Scan(
		&staff.ID,
		&staff.ClinicID,
		&staff.Email,
		&staff.PasswordHash,
		&staff.FullName,
		&staff.Role,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &staff, nil
}
