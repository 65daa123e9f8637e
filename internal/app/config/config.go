package config

import (
	"swasthya-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "swasthya"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "claim-documents"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kathmandu"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SuperadminAPIKey:          utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			RabbitMQSMSQueue:          utils.GetEnvString("APP_RABBITMQ_SMS_QUEUE", "sms_jobs"),
			RabbitMQMailerQueue:       utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer_jobs"),
			MailerEmailSender:         utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@swasthya.health"),
			ClaimDocumentURLExpiryMin: utils.GetEnvInt("APP_CLAIM_DOCUMENT_URL_EXPIRY_IN_MINUTE", 15),
		},
		Booking: Booking{
			CutoffMinutes:     utils.GetEnvInt("APP_BOOKING_CUTOFF_MINUTES", 15),
			SlotLengthMinutes: utils.GetEnvInt("APP_BOOKING_SLOT_LENGTH_MINUTES", 30),
			LockExpirySeconds: utils.GetEnvInt("APP_BOOKING_LOCK_EXPIRY_SECONDS", 10),
			DirectoryCacheTTL: utils.GetEnvInt("APP_DIRECTORY_CACHE_TTL_SECONDS", 60),
			DefaultPageSize:   utils.GetEnvInt("APP_DIRECTORY_DEFAULT_PAGE_SIZE", 10),
		},
		OTP: OTP{
			Length:               utils.GetEnvInt("APP_OTP_LENGTH", 6),
			ExpiryTimeInMinute:   utils.GetEnvInt("APP_OTP_EXP_TIME_IN_MINUTE", 5),
			MaxRequestsPerWindow: utils.GetEnvInt("APP_OTP_MAX_REQUESTS_PER_WINDOW", 3),
			WindowDurationSec:    utils.GetEnvInt("APP_OTP_WINDOW_DURATION_SECONDS", 600),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
