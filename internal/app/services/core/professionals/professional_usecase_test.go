package professionals

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectoryRepository struct {
	professionals []models.Professional
	affiliations  []models.Clinic
	searchCalls   int
	claimedBy     map[string]string
}

func (f *fakeDirectoryRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	for i := range f.professionals {
		if f.professionals[i].ID == professionalID {
			return &f.professionals[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDirectoryRepository) Search(ctx context.Context, filter *contracts.ProfessionalSearchFilter) ([]models.Professional, int, error) {
	f.searchCalls++

	offset := (filter.Page - 1) * filter.PageSize
	if offset >= len(f.professionals) {
		return nil, len(f.professionals), nil
	}
	end := offset + filter.PageSize
	if end > len(f.professionals) {
		end = len(f.professionals)
	}
	return f.professionals[offset:end], len(f.professionals), nil
}

func (f *fakeDirectoryRepository) IsAffiliated(ctx context.Context, clinicID, professionalID string) (bool, error) {
	return false, nil
}

func (f *fakeDirectoryRepository) FindAffiliations(ctx context.Context, professionalID string) ([]models.Clinic, error) {
	return f.affiliations, nil
}

func (f *fakeDirectoryRepository) SetClaimedBy(ctx context.Context, professionalID, phone string) error {
	if f.claimedBy == nil {
		f.claimedBy = map[string]string{}
	}
	f.claimedBy[professionalID] = phone
	return nil
}

type fakeClaimStore struct {
	claims map[string]*models.ClaimRequest
}

func (f *fakeClaimStore) Insert(ctx context.Context, claim *models.ClaimRequest) error {
	if f.claims == nil {
		f.claims = map[string]*models.ClaimRequest{}
	}
	f.claims[claim.ID] = claim
	return nil
}

func (f *fakeClaimStore) FindByID(ctx context.Context, claimID string) (*models.ClaimRequest, error) {
	return f.claims[claimID], nil
}

func (f *fakeClaimStore) FindPendingByProfessional(ctx context.Context, professionalID string) (*models.ClaimRequest, error) {
	for _, claim := range f.claims {
		if claim.ProfessionalID == professionalID && claim.Status == constvars.ClaimStatusPending {
			return claim, nil
		}
	}
	return nil, nil
}

func (f *fakeClaimStore) UpdateStatus(ctx context.Context, claimID, status string) error {
	claim, ok := f.claims[claimID]
	if !ok {
		return nil
	}
	claim.Status = status
	now := time.Now()
	claim.DecidedAt = &now
	return nil
}

// fakeCacheRepository mimics the real repository's JSON marshaling on Set.
type fakeCacheRepository struct {
	values map[string]string
}

func (f *fakeCacheRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(data)
	return nil
}

func (f *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCacheRepository) Increment(ctx context.Context, key string) (int64, error) {
	return 0, nil
}

func (f *fakeCacheRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return nil
}

func (f *fakeCacheRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, nil
}

func (f *fakeCacheRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type fakeDocumentStorage struct{}

func (f *fakeDocumentStorage) PresignedPutURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	return "https://storage.test/put/" + objectKey, nil
}

func (f *fakeDocumentStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

type fakeSMSService struct {
	sent []*requests.SMSMessage
}

func (f *fakeSMSService) SendSMS(ctx context.Context, request *requests.SMSMessage) error {
	f.sent = append(f.sent, request)
	return nil
}

type directoryFixture struct {
	usecase *professionalUsecase
	repo    *fakeDirectoryRepository
	claims  *fakeClaimStore
	cache   *fakeCacheRepository
	sms     *fakeSMSService
}

func newDirectoryFixture() *directoryFixture {
	f := &directoryFixture{
		repo:   &fakeDirectoryRepository{},
		claims: &fakeClaimStore{},
		cache:  &fakeCacheRepository{},
		sms:    &fakeSMSService{},
	}
	f.usecase = &professionalUsecase{
		ProfessionalRepository: f.repo,
		ClaimRepository:        f.claims,
		RedisRepository:        f.cache,
		StorageService:         &fakeDocumentStorage{},
		SMSService:             f.sms,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				ClaimDocumentURLExpiryMin: 15,
			},
			Booking: config.Booking{
				DirectoryCacheTTL: 60,
				DefaultPageSize:   10,
			},
		},
		Log: zap.NewNop(),
	}
	return f
}

func seedProfessionals(fixture *directoryFixture, count int) {
	for i := 0; i < count; i++ {
		fixture.repo.professionals = append(fixture.repo.professionals, models.Professional{
			ID:       fmt.Sprintf("aaaaaaaa-aaaa-aaaa-aaaa-%012d", i+1),
			FullName: fmt.Sprintf("Dr. Professional %d", i+1),
			Type:     constvars.ProfessionalTypeDoctor,
			City:     "Kathmandu",
		})
	}
}

func requireErrorCode(t *testing.T, err error, errorCode string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, errorCode, customErr.ErrorCode)
}

func TestDirectorySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("paginates results and builds next and prev links", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 5)

		filter := &contracts.ProfessionalSearchFilter{Page: 1, PageSize: 2}
		result, pagination, err := fixture.usecase.Search(ctx, filter, "/api/v1/directory/professionals")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 5, pagination.Total)
		assert.Contains(t, pagination.NextURL, "page=2")
		assert.Empty(t, pagination.PrevURL)

		filter.Page = 2
		result, pagination, err = fixture.usecase.Search(ctx, filter, "/api/v1/directory/professionals")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Contains(t, pagination.NextURL, "page=3")
		assert.Contains(t, pagination.PrevURL, "page=1")
	})

	t.Run("serves repeat queries from the cache", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 3)

		filter := &contracts.ProfessionalSearchFilter{Query: "gurung", Page: 1, PageSize: 10}

		first, _, err := fixture.usecase.Search(ctx, filter, "/api/v1/directory/professionals")
		require.NoError(t, err)

		second, _, err := fixture.usecase.Search(ctx, filter, "/api/v1/directory/professionals")
		require.NoError(t, err)

		assert.Equal(t, 1, fixture.repo.searchCalls)
		assert.Equal(t, first, second)
	})

	t.Run("caches pages independently", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 5)

		_, _, err := fixture.usecase.Search(ctx, &contracts.ProfessionalSearchFilter{Page: 1, PageSize: 2}, "/api/v1/directory/professionals")
		require.NoError(t, err)

		_, _, err = fixture.usecase.Search(ctx, &contracts.ProfessionalSearchFilter{Page: 2, PageSize: 2}, "/api/v1/directory/professionals")
		require.NoError(t, err)

		assert.Equal(t, 2, fixture.repo.searchCalls)
	})
}

func TestSubmitClaim(t *testing.T) {
	ctx := context.Background()
	professionalID := "aaaaaaaa-aaaa-aaaa-aaaa-000000000001"

	submitRequest := &requests.SubmitClaim{
		CouncilNumber: "NMC-12345",
		DocumentKey:   "claims/aaaaaaaa-aaaa-aaaa-aaaa-000000000001/doc",
	}

	t.Run("stores a pending claim", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)

		result, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", submitRequest)

		require.NoError(t, err)
		assert.Equal(t, constvars.ClaimStatusPending, result.Status)
		assert.Equal(t, professionalID, result.ProfessionalID)

		stored := fixture.claims.claims[result.ID]
		require.NotNil(t, stored)
		assert.Equal(t, "9841234567", stored.Phone)
		assert.Equal(t, "NMC-12345", stored.CouncilNumber)
	})

	t.Run("rejects an unknown professional", func(t *testing.T) {
		fixture := newDirectoryFixture()

		_, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", submitRequest)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("rejects a profile that is already claimed", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)
		owner := "9800000000"
		fixture.repo.professionals[0].ClaimedBy = &owner

		_, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", submitRequest)

		requireErrorCode(t, err, constvars.ErrCodeProfileAlreadyClaimed)
	})

	t.Run("rejects a profile with a claim already pending", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)

		_, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", submitRequest)
		require.NoError(t, err)

		_, err = fixture.usecase.SubmitClaim(ctx, professionalID, "9851234567", submitRequest)

		requireErrorCode(t, err, constvars.ErrCodeClaimAlreadyPending)
	})
}

func TestClaimUploadURL(t *testing.T) {
	ctx := context.Background()
	professionalID := "aaaaaaaa-aaaa-aaaa-aaaa-000000000001"

	t.Run("presigns an upload under the claims prefix", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)

		result, err := fixture.usecase.ClaimUploadURL(ctx, professionalID, "9841234567")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.DocumentKey, "claims/"+professionalID+"/"))
		assert.Contains(t, result.UploadURL, result.DocumentKey)
		assert.Equal(t, 15*60, result.ExpiresInS)
	})

	t.Run("refuses uploads for a claimed profile", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)
		owner := "9800000000"
		fixture.repo.professionals[0].ClaimedBy = &owner

		_, err := fixture.usecase.ClaimUploadURL(ctx, professionalID, "9841234567")

		requireErrorCode(t, err, constvars.ErrCodeProfileAlreadyClaimed)
	})
}

func TestDecideClaim(t *testing.T) {
	ctx := context.Background()
	professionalID := "aaaaaaaa-aaaa-aaaa-aaaa-000000000001"

	submitClaim := func(fixture *directoryFixture) string {
		result, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", &requests.SubmitClaim{
			CouncilNumber: "NMC-12345",
			DocumentKey:   "claims/" + professionalID + "/doc",
		})
		if err != nil {
			panic(err)
		}
		return result.ID
	}

	t.Run("approval assigns the profile and notifies the claimant", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)
		claimID := submitClaim(fixture)

		err := fixture.usecase.DecideClaim(ctx, claimID, &requests.DecideClaim{Decision: constvars.ClaimStatusApproved})

		require.NoError(t, err)
		assert.Equal(t, "9841234567", fixture.repo.claimedBy[professionalID])
		assert.Equal(t, constvars.ClaimStatusApproved, fixture.claims.claims[claimID].Status)

		require.Len(t, fixture.sms.sent, 1)
		assert.Equal(t, "9841234567", fixture.sms.sent[0].PhoneNumber)
		assert.Contains(t, fixture.sms.sent[0].Message, "approved")
	})

	t.Run("rejection leaves the profile unclaimed", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)
		claimID := submitClaim(fixture)

		err := fixture.usecase.DecideClaim(ctx, claimID, &requests.DecideClaim{Decision: constvars.ClaimStatusRejected})

		require.NoError(t, err)
		assert.Empty(t, fixture.repo.claimedBy)
		assert.Equal(t, constvars.ClaimStatusRejected, fixture.claims.claims[claimID].Status)

		require.Len(t, fixture.sms.sent, 1)
		assert.Contains(t, fixture.sms.sent[0].Message, "rejected")
	})

	t.Run("rejects a claim that was already decided", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)
		claimID := submitClaim(fixture)

		require.NoError(t, fixture.usecase.DecideClaim(ctx, claimID, &requests.DecideClaim{Decision: constvars.ClaimStatusRejected}))

		err := fixture.usecase.DecideClaim(ctx, claimID, &requests.DecideClaim{Decision: constvars.ClaimStatusApproved})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestFindClaimDetail(t *testing.T) {
	ctx := context.Background()
	professionalID := "aaaaaaaa-aaaa-aaaa-aaaa-000000000001"

	t.Run("returns the claim with a presigned document url", func(t *testing.T) {
		fixture := newDirectoryFixture()
		seedProfessionals(fixture, 1)

		submitted, err := fixture.usecase.SubmitClaim(ctx, professionalID, "9841234567", &requests.SubmitClaim{
			CouncilNumber: "NMC-12345",
			DocumentKey:   "claims/" + professionalID + "/doc",
		})
		require.NoError(t, err)

		detail, err := fixture.usecase.FindClaimDetail(ctx, submitted.ID)

		require.NoError(t, err)
		assert.Equal(t, "9841234567", detail.Phone)
		assert.Equal(t, "NMC-12345", detail.CouncilNumber)
		assert.Contains(t, detail.DocumentURL, "claims/"+professionalID+"/doc")
	})

	t.Run("returns not found for an unknown claim", func(t *testing.T) {
		fixture := newDirectoryFixture()

		_, err := fixture.usecase.FindClaimDetail(ctx, "bbbbbbbb-bbbb-bbbb-bbbb-000000000001")

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
