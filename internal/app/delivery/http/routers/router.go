package routers

import (
	"fmt"
	"time"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/services/core/appointments"
	"swasthya-service/internal/app/services/core/auth"
	"swasthya-service/internal/app/services/core/clinics"
	"swasthya-service/internal/app/services/core/professionals"
	"swasthya-service/internal/app/services/core/schedules"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *auth.AuthController,
	clinicController *clinics.ClinicController,
	professionalController *professionals.ProfessionalController,
	scheduleController *schedules.ScheduleController,
	appointmentController *appointments.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)
	router.Use(mw.APIKeyAuth)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		// the anonymous booking surface lives outside the versioned tree,
		// its paths and payloads are pinned by the published contract
		r.Route("/appointments", func(r chi.Router) {
			attachPublicBookingRoutes(r, appointmentController)
		})

		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, authController)
			})

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, mw, clinicController, scheduleController, appointmentController)
			})

			r.Route("/directory", func(r chi.Router) {
				attachDirectoryRoutes(r, professionalController)
			})

			r.Route("/professionals", func(r chi.Router) {
				attachClaimRoutes(r, mw, professionalController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, mw, clinicController, professionalController)
			})
		})
	})
}
