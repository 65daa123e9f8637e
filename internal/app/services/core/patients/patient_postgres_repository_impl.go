package patients

import (
	"context"
	"database/sql"
	"sync"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/queries"
)

type patientPostgresRepository struct {
	DB *sql.DB
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		patientPostgresRepositoryInstance = &patientPostgresRepository{DB: db}
	})
	return patientPostgresRepositoryInstance
}

func (repo *patientPostgresRepository) FindByClinicAndPhone(ctx context.Context, clinicID, phone string) (*models.Patient, error) {
	return repo.scanOne(ctx, queries.GetPatientByClinicAndPhone, clinicID, phone)
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return repo.scanOne(ctx, queries.GetPatientByID, patientID)
}

func (repo *patientPostgresRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*models.Patient, error) {
	var patient models.Patient
	err := repo.DB.QueryRowContext(ctx, query, args...).Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.PatientNumber,
		&patient.FullName,
		&patient.Phone,
		&patient.Email,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}
