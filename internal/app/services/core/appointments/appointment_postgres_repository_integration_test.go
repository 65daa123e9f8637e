//go:build integration

// These tests run against a migrated postgres database:
//
//	TEST_POSTGRES_DSN="postgres://..." go test -tags integration ./internal/app/services/core/appointments/
package appointments

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"swasthya-service/internal/app/contracts"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingDBFixture struct {
	db             *sql.DB
	repo           *appointmentPostgresRepository
	clinicID       string
	professionalID string
}

func newBookingDBFixture(t *testing.T) *bookingDBFixture {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	fixture := &bookingDBFixture{
		db:             db,
		repo:           &appointmentPostgresRepository{DB: db, Log: zap.NewNop()},
		clinicID:       uuid.NewString(),
		professionalID: uuid.NewString(),
	}

	now := time.Now()
	_, err = db.Exec(`INSERT INTO clinics (id, name, address, city, phone, verified, created_at, updated_at)
		VALUES ($1, 'Himalaya Clinic', 'Lazimpat', 'Kathmandu', '014412345', TRUE, $2, $2)`,
		fixture.clinicID, now)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO professionals (id, full_name, type, created_at, updated_at)
		VALUES ($1, 'Sita Maharjan', 'PHARMACIST', $2, $2)`,
		fixture.professionalID, now)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM appointments WHERE clinic_id = $1`, fixture.clinicID)
		db.Exec(`DELETE FROM appointment_counters WHERE clinic_id = $1`, fixture.clinicID)
		db.Exec(`DELETE FROM patients WHERE clinic_id = $1`, fixture.clinicID)
		db.Exec(`DELETE FROM professionals WHERE id = $1`, fixture.professionalID)
		db.Exec(`DELETE FROM clinics WHERE id = $1`, fixture.clinicID)
		db.Close()
	})

	return fixture
}

func (f *bookingDBFixture) bookingWrite(phone, name string, email *string, slotStart, slotEnd string) *contracts.BookingWrite {
	return &contracts.BookingWrite{
		ClinicID:           f.clinicID,
		ProfessionalID:     f.professionalID,
		Date:               time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour),
		SlotStart:          slotStart,
		SlotEnd:            slotEnd,
		MaxPatientsPerSlot: 2,
		PatientName:        name,
		PatientPhone:       phone,
		PatientEmail:       email,
	}
}

func (f *bookingDBFixture) patientRow(t *testing.T, patientID string) (fullName string, email *string) {
	t.Helper()
	err := f.db.QueryRow(`SELECT full_name, email FROM patients WHERE id = $1`, patientID).Scan(&fullName, &email)
	require.NoError(t, err)
	return fullName, email
}

func TestCreateBookingPatientUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat bookings reuse the patient row by clinic and phone", func(t *testing.T) {
		fixture := newBookingDBFixture(t)
		email := "ram@example.com"

		first, err := fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9841234567", "Ram Bahadur Thapa", &email, "09:00", "09:30"))
		require.NoError(t, err)
		assert.Equal(t, 1, first.TokenNumber)
		assert.Equal(t, "P-000001", first.PatientNumber)

		second, err := fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9841234567", "Ram B. Thapa", nil, "10:00", "10:30"))
		require.NoError(t, err)
		assert.Equal(t, 2, second.TokenNumber)
		assert.Equal(t, first.PatientID, second.PatientID)
		assert.Equal(t, first.PatientNumber, second.PatientNumber)

		fullName, storedEmail := fixture.patientRow(t, second.PatientID)
		assert.Equal(t, "Ram B. Thapa", fullName)
		require.NotNil(t, storedEmail)
		assert.Equal(t, "ram@example.com", *storedEmail)
	})

	t.Run("a supplied email overwrites the stored one", func(t *testing.T) {
		fixture := newBookingDBFixture(t)
		oldEmail := "old@example.com"
		newEmail := "new@example.com"

		first, err := fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9851234567", "Gita Shrestha", &oldEmail, "09:00", "09:30"))
		require.NoError(t, err)

		_, err = fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9851234567", "Gita Shrestha", &newEmail, "10:00", "10:30"))
		require.NoError(t, err)

		_, storedEmail := fixture.patientRow(t, first.PatientID)
		require.NotNil(t, storedEmail)
		assert.Equal(t, "new@example.com", *storedEmail)
	})

	t.Run("a different phone allocates a fresh patient number", func(t *testing.T) {
		fixture := newBookingDBFixture(t)

		first, err := fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9841234567", "Ram Bahadur Thapa", nil, "09:00", "09:30"))
		require.NoError(t, err)

		second, err := fixture.repo.CreateBooking(ctx, fixture.bookingWrite("9812345678", "Hari Koirala", nil, "09:00", "09:30"))
		require.NoError(t, err)

		assert.NotEqual(t, first.PatientID, second.PatientID)
		assert.Equal(t, "P-000001", first.PatientNumber)
		assert.Equal(t, "P-000002", second.PatientNumber)
	})
}
