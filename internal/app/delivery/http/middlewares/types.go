package middlewares

import (
	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionRepo    contracts.SessionRepository
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionRepository contracts.SessionRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionRepo:    sessionRepository,
		InternalConfig: internalConfig,
	}
}
