package contracts

import (
	"context"

	"swasthya-service/internal/pkg/dto/requests"
)

// SMSService publishes outbound SMS jobs; delivery happens in an external
// worker consuming the queue.
type SMSService interface {
	SendSMS(ctx context.Context, request *requests.SMSMessage) error
}

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailMessage) error
}
