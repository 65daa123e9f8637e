package schedules

import (
	"context"
	"testing"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScheduleStore struct {
	inserted []*models.Schedule
}

func (f *fakeScheduleStore) Insert(ctx context.Context, schedule *models.Schedule) error {
	f.inserted = append(f.inserted, schedule)
	return nil
}

func (f *fakeScheduleStore) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleStore) FindActiveForDay(ctx context.Context, clinicID, professionalID string, dayOfWeek int, date time.Time) ([]models.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleStore) Deactivate(ctx context.Context, clinicID, scheduleID string) error {
	return nil
}

type fakeLeaveStore struct {
	inserted []*models.Leave
}

func (f *fakeLeaveStore) Insert(ctx context.Context, leave *models.Leave) error {
	f.inserted = append(f.inserted, leave)
	return nil
}

func (f *fakeLeaveStore) FindForDate(ctx context.Context, clinicID, professionalID string, date time.Time) ([]models.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveStore) FindByClinicAndProfessional(ctx context.Context, clinicID, professionalID string) ([]models.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveStore) Delete(ctx context.Context, clinicID, leaveID string) error {
	return nil
}

type fakeAffiliationRepository struct {
	professional *models.Professional
	affiliated   bool
}

func (f *fakeAffiliationRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	return f.professional, nil
}

func (f *fakeAffiliationRepository) Search(ctx context.Context, filter *contracts.ProfessionalSearchFilter) ([]models.Professional, int, error) {
	return nil, 0, nil
}

func (f *fakeAffiliationRepository) IsAffiliated(ctx context.Context, clinicID, professionalID string) (bool, error) {
	return f.affiliated, nil
}

func (f *fakeAffiliationRepository) FindAffiliations(ctx context.Context, professionalID string) ([]models.Clinic, error) {
	return nil, nil
}

func (f *fakeAffiliationRepository) SetClaimedBy(ctx context.Context, professionalID, phone string) error {
	return nil
}

type scheduleFixture struct {
	usecase   *scheduleUsecase
	schedules *fakeScheduleStore
	leaves    *fakeLeaveStore
	profs     *fakeAffiliationRepository
}

func newScheduleFixture() *scheduleFixture {
	f := &scheduleFixture{
		schedules: &fakeScheduleStore{},
		leaves:    &fakeLeaveStore{},
		profs: &fakeAffiliationRepository{
			professional: &models.Professional{
				ID:       "22222222-2222-2222-2222-222222222222",
				FullName: "Dr. Anita Gurung",
				Type:     constvars.ProfessionalTypeDoctor,
			},
			affiliated: true,
		},
	}
	f.usecase = &scheduleUsecase{
		ScheduleRepository:     f.schedules,
		LeaveRepository:        f.leaves,
		ProfessionalRepository: f.profs,
		Log:                    zap.NewNop(),
	}
	return f
}

func validScheduleRequest() *requests.CreateSchedule {
	return &requests.CreateSchedule{
		ProfessionalID:     "22222222-2222-2222-2222-222222222222",
		DayOfWeek:          1,
		StartTime:          "09:00",
		EndTime:            "17:00",
		MaxPatientsPerSlot: 2,
		EffectiveFrom:      "2026-01-01",
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrCodeValidation, customErr.ErrorCode)
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()
	clinicID := "11111111-1111-1111-1111-111111111111"

	t.Run("inserts a valid schedule", func(t *testing.T) {
		fixture := newScheduleFixture()

		result, err := fixture.usecase.CreateSchedule(ctx, clinicID, validScheduleRequest())

		require.NoError(t, err)
		assert.Equal(t, "09:00", result.StartTime)
		assert.True(t, result.IsActive)

		require.Len(t, fixture.schedules.inserted, 1)
		assert.Equal(t, clinicID, fixture.schedules.inserted[0].ClinicID)
		assert.Nil(t, fixture.schedules.inserted[0].EffectiveTo)
	})

	t.Run("rejects an end time before the start time", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validScheduleRequest()
		request.StartTime = "17:00"
		request.EndTime = "09:00"

		_, err := fixture.usecase.CreateSchedule(ctx, clinicID, request)

		assertValidationError(t, err)
		assert.Empty(t, fixture.schedules.inserted)
	})

	t.Run("rejects an end time equal to the start time", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validScheduleRequest()
		request.EndTime = request.StartTime

		_, err := fixture.usecase.CreateSchedule(ctx, clinicID, request)

		assertValidationError(t, err)
	})

	t.Run("rejects an unaffiliated professional", func(t *testing.T) {
		fixture := newScheduleFixture()
		fixture.profs.affiliated = false

		_, err := fixture.usecase.CreateSchedule(ctx, clinicID, validScheduleRequest())

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrCodeDoctorNotAffiliated, customErr.ErrorCode)
	})

	t.Run("keeps an explicit effective range", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validScheduleRequest()
		request.EffectiveTo = "2026-06-30"

		result, err := fixture.usecase.CreateSchedule(ctx, clinicID, request)

		require.NoError(t, err)
		assert.Equal(t, "2026-06-30", result.EffectiveTo)
		require.NotNil(t, fixture.schedules.inserted[0].EffectiveTo)
	})
}

func TestCreateLeave(t *testing.T) {
	ctx := context.Background()
	clinicID := "11111111-1111-1111-1111-111111111111"

	validLeaveRequest := func() *requests.CreateLeave {
		return &requests.CreateLeave{
			ProfessionalID: "22222222-2222-2222-2222-222222222222",
			LeaveDate:      "2026-09-15",
		}
	}

	t.Run("inserts a full day leave with no times", func(t *testing.T) {
		fixture := newScheduleFixture()

		result, err := fixture.usecase.CreateLeave(ctx, clinicID, validLeaveRequest())

		require.NoError(t, err)
		assert.Empty(t, result.StartTime)
		assert.Empty(t, result.EndTime)

		require.Len(t, fixture.leaves.inserted, 1)
		assert.Nil(t, fixture.leaves.inserted[0].StartTime)
		assert.Nil(t, fixture.leaves.inserted[0].EndTime)
	})

	t.Run("inserts a partial leave with both times", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validLeaveRequest()
		request.StartTime = "13:00"
		request.EndTime = "15:00"

		result, err := fixture.usecase.CreateLeave(ctx, clinicID, request)

		require.NoError(t, err)
		assert.Equal(t, "13:00", result.StartTime)
		assert.Equal(t, "15:00", result.EndTime)
	})

	t.Run("rejects a start time without an end time", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validLeaveRequest()
		request.StartTime = "13:00"

		_, err := fixture.usecase.CreateLeave(ctx, clinicID, request)

		assertValidationError(t, err)
		assert.Empty(t, fixture.leaves.inserted)
	})

	t.Run("rejects an end time without a start time", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validLeaveRequest()
		request.EndTime = "15:00"

		_, err := fixture.usecase.CreateLeave(ctx, clinicID, request)

		assertValidationError(t, err)
	})

	t.Run("rejects a reversed partial leave", func(t *testing.T) {
		fixture := newScheduleFixture()
		request := validLeaveRequest()
		request.StartTime = "15:00"
		request.EndTime = "13:00"

		_, err := fixture.usecase.CreateLeave(ctx, clinicID, request)

		assertValidationError(t, err)
	})
}
