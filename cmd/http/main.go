package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/delivery/http/routers"
	"swasthya-service/internal/app/drivers/database"
	"swasthya-service/internal/app/drivers/logger"
	"swasthya-service/internal/app/drivers/messaging"
	minioDriver "swasthya-service/internal/app/drivers/storage"
	"swasthya-service/internal/app/services/core/appointments"
	"swasthya-service/internal/app/services/core/auth"
	"swasthya-service/internal/app/services/core/clinics"
	"swasthya-service/internal/app/services/core/patients"
	"swasthya-service/internal/app/services/core/professionals"
	"swasthya-service/internal/app/services/core/schedules"
	"swasthya-service/internal/app/services/shared/locker"
	"swasthya-service/internal/app/services/shared/mailer"
	"swasthya-service/internal/app/services/shared/ratelimiter"
	redisRepo "swasthya-service/internal/app/services/shared/redis"
	"swasthya-service/internal/app/services/shared/sms"
	"swasthya-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location %s: %v", internalConfig.App.Timezone, err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	storageService := storage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	smsService, err := sms.NewSMSService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQSMSQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize SMS service: %v", err)
	}
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.InternalConfig.App.MailerEmailSender)
	if err != nil {
		logrus.Fatalf("Failed to initialize mailer service: %v", err)
	}

	// Auth
	sessionRepository := auth.NewSessionRedisRepository(redisRepository, bootstrap.Logger)
	staffRepository := clinics.NewStaffPostgresRepository(bootstrap.PostgresDB)
	authUsecase := auth.NewAuthUsecase(sessionRepository, staffRepository, redisRepository, resourceLimiter, smsService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	// Clinics
	clinicRepository := clinics.NewClinicPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	clinicUsecase := clinics.NewClinicUsecase(clinicRepository, mailerService, bootstrap.Logger)
	clinicController := clinics.NewClinicController(bootstrap.Logger, clinicUsecase)

	// Professionals
	professionalRepository := professionals.NewProfessionalPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	claimRepository := professionals.NewClaimPostgresRepository(bootstrap.PostgresDB)
	professionalUsecase := professionals.NewProfessionalUsecase(professionalRepository, claimRepository, redisRepository, storageService, smsService, bootstrap.InternalConfig, bootstrap.Logger)
	professionalController := professionals.NewProfessionalController(bootstrap.Logger, professionalUsecase, bootstrap.InternalConfig.Booking.DefaultPageSize)

	// Schedules
	scheduleRepository := schedules.NewSchedulePostgresRepository(bootstrap.PostgresDB)
	leaveRepository := schedules.NewLeavePostgresRepository(bootstrap.PostgresDB)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, leaveRepository, professionalRepository, bootstrap.Logger)
	scheduleController := schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Appointments
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, clinicRepository, professionalRepository, scheduleRepository, leaveRepository, lockerService, smsService, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, authController, clinicController, professionalController, scheduleController, appointmentController)
}
