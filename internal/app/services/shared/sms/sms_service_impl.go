package sms

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

type smsService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	smsServiceInstance contracts.SMSService
	onceSMSService     sync.Once
	smsServiceError    error
)

func NewSMSService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.SMSService, error) {
	onceSMSService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			smsServiceError = err
			return
		}
		instance := &smsService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
		smsServiceInstance = instance
	})
	return smsServiceInstance, smsServiceError
}

func (s *smsService) SendSMS(ctx context.Context, request *requests.SMSMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("smsService.SendSMS called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := json.Marshal(request)
	if err != nil {
		s.Log.Error("smsService.SendSMS error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
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

	s.Log.Info("smsService.SendSMS publishing message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("smsService.SendSMS error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("smsService.SendSMS succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return nil
}
