package mailer

import (
	"context"
	"sync"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
	Sender  string
	Log     *zap.Logger
}

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
	mailerServiceError    error
)

func NewMailerService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue, sender string) (contracts.MailerService, error) {
	onceMailerService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			mailerServiceError = err
			return
		}
		instance := &mailerService{
			Channel: channel,
			Queue:   queue,
			Sender:  sender,
			Log:     logger,
		}
		mailerServiceInstance = instance
	})
	return mailerServiceInstance, mailerServiceError
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.From == "" {
		request.From = s.Sender
	}

	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
