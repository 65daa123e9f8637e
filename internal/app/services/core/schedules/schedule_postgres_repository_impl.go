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

type schedulePostgresRepository struct {
	DB *sql.DB
}

var (
	schedulePostgresRepositoryInstance contracts.ScheduleRepository
	onceSchedulePostgresRepository     sync.Once
)

func NewSchedulePostgresRepository(db *sql.DB) contracts.ScheduleRepository {
	onceSchedulePostgresRepository.Do(func() {
		schedulePostgresRepositoryInstance = &schedulePostgresRepository{DB: db}
	})
	return schedulePostgresRepositoryInstance
}

func (repo *schedulePostgresRepository) Insert(ctx context.Context, schedule *models.Schedule) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertSchedule,
		schedule.ID,
		schedule.ClinicID,
		schedule.ProfessionalID,
		schedule.DayOfWeek,
		schedule.StartTime,
		schedule.EndTime,
		schedule.MaxPatientsPerSlot,
		schedule.EffectiveFrom,
		schedule.EffectiveTo,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *schedulePostgresRepository) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Schedule, error) {
	return repo.scanMany(ctx, queries.GetSchedulesByClinicAndProfessional, clinicID, professionalID)
}

func (repo *schedulePostgresRepository) FindActiveForDay(ctx context.Context, clinicID, professionalID string, dayOfWeek int, date time.Time) ([]models.Schedule, error) {
	return repo.scanMany(ctx, queries.GetActiveSchedulesForDay, clinicID, professionalID, dayOfWeek, date)
}

func (repo *schedulePostgresRepository) Deactivate(ctx context.Context, clinicID, scheduleID string) error {
	_, err := repo.DB.ExecContext(ctx, queries.DeactivateSchedule, time.Now(), scheduleID, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *schedulePostgresRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]models.Schedule, error) {
	rows, err := repo.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var model models.Schedule
		if err := rows.Scan(
			&model.ID,
			&model.ClinicID,
			&model.ProfessionalID,
			&model.DayOfWeek,
			&model.StartTime,
			&model.EndTime,
			&model.MaxPatientsPerSlot,
			&model.EffectiveFrom,
			&model.EffectiveTo,
			&model.IsActive,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		schedules = append(schedules, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return schedules, nil
}
