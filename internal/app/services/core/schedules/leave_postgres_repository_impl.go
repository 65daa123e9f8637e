package schedules

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

type leavePostgresRepository struct {
	DB *sql.DB
}

var (
	leavePostgresRepositoryInstance contracts.LeaveRepository
	onceLeavePostgresRepository     sync.Once
)

func NewLeavePostgresRepository(db *sql.DB) contracts.LeaveRepository {
	onceLeavePostgresRepository.Do(func() {
		leavePostgresRepositoryInstance = &leavePostgresRepository{DB: db}
	})
	return leavePostgresRepositoryInstance
}

func (repo *leavePostgresRepository) Insert(ctx context.Context, leave *models.Leave) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertLeave,
		leave.ID,
		leave.ClinicID,
		leave.ProfessionalID,
		leave.LeaveDate,
		leave.StartTime,
		leave.EndTime,
		leave.Reason,
		leave.CreatedAt,
		leave.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *leavePostgresRepository) FindForDate(ctx context.Context, clinicID, professionalID string, date time.Time) ([]models.Leave, error) {
	return repo.scanMany(ctx, queries.GetLeavesForDate, clinicID, professionalID, date)
}

func (repo *leavePostgresRepository) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Leave, error) {
	return repo.scanMany(ctx, queries.GetLeavesByClinicAndProfessional, clinicID, professionalID, time.Now())
}

func (repo *leavePostgresRepository) Delete(ctx context.Context, clinicID, leaveID string) error {
	_, err := repo.DB.ExecContext(ctx, queries.DeleteLeave, leaveID, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (repo *leavePostgresRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]models.Leave, error) {
	rows, err := repo.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var leaves []models.Leave
	for rows.Next() {
		var model models.Leave
		if err := rows.Scan(
			&model.ID,
			&model.ClinicID,
			&model.ProfessionalID,
			&model.LeaveDate,
			&model.StartTime,
			&model.EndTime,
			&model.Reason,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		leaves = append(leaves, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return leaves, nil
}
