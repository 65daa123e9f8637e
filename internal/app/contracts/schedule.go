package contracts

import (
	"context"
	"time"

	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.Schedule) error
	FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Schedule, error)
	// FindActiveForDay returns the active schedules governing a concrete
	// date: rows for that weekday whose effective range covers the date.
	FindActiveForDay(ctx context.Context, clinicID, professionalID string, dayOfWeek int, date time.Time) ([]models.Schedule, error)
	Deactivate(ctx context.Context, clinicID, scheduleID string) error
}

type LeaveRepository interface {
	Insert(ctx context.Context, leave *models.Leave) error
	FindForDate(ctx context.Context, clinicID, professionalID string, date time.Time) ([]models.Leave, error)
	FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Leave, error)
	Delete(ctx context.Context, clinicID, leaveID string) error
}

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, clinicID string, request *requests.CreateSchedule) (*responses.Schedule, error)
	ListSchedules(ctx context.Context, clinicID, professionalID string) ([]responses.Schedule, error)
	DeactivateSchedule(ctx context.Context, clinicID, scheduleID string) error
	CreateLeave(ctx context.Context, clinicID string, request *requests.CreateLeave) (*responses.Leave, error)
	ListLeaves(ctx context.Context, clinicID, professionalID string) ([]responses.Leave, error)
	DeleteLeave(ctx context.Context, clinicID, leaveID string) error
}
