package contracts

import (
	"context"

	"swasthya-service/internal/app/models"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/dto/responses"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type AuthUsecase interface {
	RequestOTP(ctx context.Context, request *requests.RequestOTP) error
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.AuthSession, error)
	Login(ctx context.Context, request *requests.StaffLogin) (*responses.AuthSession, error)
	Logout(ctx context.Context, sessionID string) error
}
