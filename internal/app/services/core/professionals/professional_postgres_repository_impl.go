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

	"go.uber.org/zap"
)

type professionalPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	professionalPostgresRepositoryInstance contracts.ProfessionalRepository
	onceProfessionalPostgresRepository     sync.Once
)

func NewProfessionalPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ProfessionalRepository {
	onceProfessionalPostgresRepository.Do(func() {
		instance := &professionalPostgresRepository{
			DB:  db,
			Log: logger,
		}
		professionalPostgresRepositoryInstance = instance
	})
	return professionalPostgresRepositoryInstance
}

func (repo *professionalPostgresRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	query := queries.GetProfessionalByID
	var professional models.Professional
	err := repo.DB.QueryRowContext(ctx, query, professionalID).Scan(
		&professional.ID,
		&professional.FullName,
		&professional.FullNameNe,
		&professional.Type,
		&professional.Specialty,
		&professional.CouncilNumber,
		&professional.City,
		&professional.ClaimedBy,
		&professional.CreatedAt,
		&professional.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &professional, nil
}

func (repo *professionalPostgresRepository) Search(ctx context.Context, filter *contracts.ProfessionalSearchFilter) ([]models.Professional, int, error) {
	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountProfessionals,
		filter.Query, filter.Type, filter.City,
	).Scan(&total)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	rows, err := repo.DB.QueryContext(ctx, queries.SearchProfessionals,
		filter.Query, filter.Type, filter.City, filter.PageSize, offset,
	)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var professionals []models.Professional
	for rows.Next() {
		var model models.Professional
		if err := rows.Scan(
			&model.ID,
			&model.FullName,
			&model.FullNameNe,
			&model.Type,
			&model.Specialty,
			&model.CouncilNumber,
			&model.City,
			&model.ClaimedBy,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, 0, exceptions.ErrPostgresDBFindData(err)
		}
		professionals = append(professionals, model)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return professionals, total, nil
}

func (repo *professionalPostgresRepository) IsAffiliated(ctx context.Context, clinicID, professionalID string) (bool, error) {
	var affiliated bool
	err := repo.DB.QueryRowContext(ctx, queries.IsProfessionalAffiliated, clinicID, professionalID).Scan(&affiliated)
	if err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return affiliated, nil
}

func (repo *professionalPostgresRepository) FindAffiliations(ctx context.Context, professionalID string) ([]models.Clinic, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAffiliationsByProfessional, professionalID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var clinicIDs []string
	for rows.Next() {
		var affiliation models.Affiliation
		if err := rows.Scan(&affiliation.ClinicID, &affiliation.ProfessionalID); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		clinicIDs = append(clinicIDs, affiliation.ClinicID)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	var clinics []models.Clinic
	for _, clinicID := range clinicIDs {
		var clinic models.Clinic
		err := repo.DB.QueryRowContext(ctx, queries.GetClinicByID, clinicID).Scan(
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
			continue
		} else if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		clinics = append(clinics, clinic)
	}

	return clinics, nil
}

func (repo *professionalPostgresRepository) SetClaimedBy(ctx context.Context, professionalID, phone string) error {
	_, err := repo.DB.ExecContext(ctx, queries.SetProfessionalClaimedBy, phone, time.Now(), professionalID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
