package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/queries"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		instance := &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		appointmentPostgresRepositoryInstance = instance
	})
	return appointmentPostgresRepositoryInstance
}

func (repo *appointmentPostgresRepository) CountActiveForSlot(ctx context.Context, clinicID, professionalID string, date time.Time, slotStart, slotEnd string) (int, error) {
	var count int
	err := repo.DB.QueryRowContext(ctx, queries.CountActiveAppointmentsForSlot,
		clinicID, professionalID, date, slotStart,
	).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *appointmentPostgresRepository) CountActiveForDay(ctx context.Context, clinicID, professionalID string, date time.Time) (map[string]int, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.CountActiveAppointmentsForDay, clinicID, professionalID, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slotStart string
		var count int
		if err := rows.Scan(&slotStart, &count); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		counts[slotStart] = count
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return counts, nil
}

// CreateBooking persists a validated booking in one serializable transaction:
// re-check capacity, upsert the patient (allocating a patient number from the
// clinic's sequence on first contact), allocate the day's token, insert the
// appointment. Two racing bookings for the last seat serialize here and the
// loser gets the fully-booked rejection.
func (repo *appointmentPostgresRepository) CreateBooking(ctx context.Context, write *contracts.BookingWrite) (*contracts.BookingRecord, error) {
	tx, err := repo.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	now := time.Now()

	var activeCount int
	err = tx.QueryRowContext(ctx, queries.CountActiveAppointmentsForSlot,
		write.ClinicID, write.ProfessionalID, write.Date, write.SlotStart,
	).Scan(&activeCount)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if activeCount >= write.MaxPatientsPerSlot {
		return nil, exceptions.ErrSlotUnavailable(constvars.ErrClientSlotFullyBooked)
	}

	var existing models.Patient
	patientNumber := ""
	err = tx.QueryRowContext(ctx, queries.GetPatientByClinicAndPhone, write.ClinicID, write.PatientPhone).Scan(
		&existing.ID,
		&existing.ClinicID,
		&existing.PatientNumber,
		&existing.FullName,
		&existing.Phone,
		&existing.Email,
		&existing.CreatedAt,
		&existing.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		var seq int64
		if err := tx.QueryRowContext(ctx, queries.IncrementClinicPatientSeq, now, write.ClinicID).Scan(&seq); err != nil {
			return nil, exceptions.ErrPostgresDBUpdateData(err)
		}
		patientNumber = fmt.Sprintf(constvars.PatientNumberFormat, seq)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	} else {
		patientNumber = existing.PatientNumber
	}

	record := &contracts.BookingRecord{}
	err = tx.QueryRowContext(ctx, queries.UpsertPatient,
		uuid.NewString(),
		write.ClinicID,
		patientNumber,
		write.PatientName,
		write.PatientPhone,
		write.PatientEmail,
		now,
		now,
	).Scan(&record.PatientID, &record.PatientNumber)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.QueryRowContext(ctx, queries.NextTokenNumber, write.ClinicID, write.Date).Scan(&record.TokenNumber); err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	appointmentType := constvars.AppointmentTypeNew
	var previousVisits int
	err = tx.QueryRowContext(ctx, queries.CountPreviousAppointmentsForPatient,
		write.ClinicID, write.ProfessionalID, record.PatientID,
	).Scan(&previousVisits)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if previousVisits > 0 {
		appointmentType = constvars.AppointmentTypeFollowUp
	}

	record.AppointmentID = uuid.NewString()
	_, err = tx.ExecContext(ctx, queries.InsertAppointment,
		record.AppointmentID,
		write.ClinicID,
		write.ProfessionalID,
		record.PatientID,
		write.Date,
		write.SlotStart,
		write.SlotEnd,
		record.TokenNumber,
		constvars.AppointmentStatusScheduled,
		appointmentType,
		constvars.AppointmentSourceOnline,
		write.ChiefComplaint,
		now,
		now,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("appointmentPostgresRepository.CreateBooking committed",
		zap.String(constvars.LoggingClinicIDKey, write.ClinicID),
		zap.String(constvars.LoggingProfessionalIDKey, write.ProfessionalID),
		zap.String(constvars.LoggingAppointmentIDKey, record.AppointmentID),
	)
	return record, nil
}

func (repo *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID).Scan(
		&appointment.ID,
		&appointment.ClinicID,
		&appointment.ProfessionalID,
		&appointment.PatientID,
		&appointment.AppointmentDate,
		&appointment.SlotStart,
		&appointment.SlotEnd,
		&appointment.TokenNumber,
		&appointment.Status,
		&appointment.Type,
		&appointment.Source,
		&appointment.ChiefComplaint,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointment, nil
}

func (repo *appointmentPostgresRepository) FindByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]models.Appointment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAppointmentsByClinicAndDate, clinicID, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var model models.Appointment
		if err := rows.Scan(
			&model.ID,
			&model.ClinicID,
			&model.ProfessionalID,
			&model.PatientID,
			&model.AppointmentDate,
			&model.SlotStart,
			&model.SlotEnd,
			&model.TokenNumber,
			&model.Status,
			&model.Type,
			&model.Source,
			&model.ChiefComplaint,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return appointments, nil
}

func (repo *appointmentPostgresRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	_, err := repo.DB.ExecContext(ctx, queries.UpdateAppointmentStatus, status, time.Now(), appointmentID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
