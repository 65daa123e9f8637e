package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionRepositoryInstance contracts.SessionRepository
	onceSessionRepository     sync.Once
)

type sessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionRedisRepository(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionRepository {
	onceSessionRepository.Do(func() {
		instance := &sessionRedisRepository{
			RedisRepository: redisRepository,
			Log:             logger,
		}
		sessionRepositoryInstance = instance
	})
	return sessionRepositoryInstance
}

func (repo *sessionRedisRepository) CreateSession(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrRedisSet(fmt.Errorf("session %s already expired", session.SessionID))
	}
	return repo.RedisRepository.Set(ctx, key, session, ttl)
}

// GetSession returns nil without error when the session key is gone, which
// the caller treats as an expired token.
func (repo *sessionRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	data, err := repo.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := &models.Session{}
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return session, nil
}

func (repo *sessionRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return repo.RedisRepository.Delete(ctx, key)
}
