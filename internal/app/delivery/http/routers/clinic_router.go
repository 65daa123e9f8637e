package routers

import (
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/services/core/appointments"
	"swasthya-service/internal/app/services/core/clinics"
	"swasthya-service/internal/app/services/core/schedules"
	"swasthya-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	clinicController *clinics.ClinicController,
	scheduleController *schedules.ScheduleController,
	appointmentController *appointments.AppointmentController,
) {
	router.Post("/register", clinicController.Register)
	router.Get("/{clinic_id}", clinicController.FindByID)

	router.Route("/{clinic_id}/schedules", func(r chi.Router) {
		attachScheduleRoutes(r, mw, scheduleController)
	})
	router.Route("/{clinic_id}/leaves", func(r chi.Router) {
		attachLeaveRoutes(r, mw, scheduleController)
	})
	router.Route("/{clinic_id}/appointments", func(r chi.Router) {
		attachClinicAppointmentRoutes(r, mw, appointmentController)
	})
}

func attachScheduleRoutes(router chi.Router, mw *middlewares.Middlewares, scheduleController *schedules.ScheduleController) {
	staffOnly := mw.RequireRoles(constvars.SwasthyaRoleClinicStaff)

	router.With(mw.SessionAuth, staffOnly).Post("/", scheduleController.CreateSchedule)
	router.With(mw.SessionAuth, staffOnly).Get("/professionals/{professional_id}", scheduleController.ListSchedules)
	router.With(mw.SessionAuth, staffOnly).Delete("/{schedule_id}", scheduleController.DeactivateSchedule)
}

func attachLeaveRoutes(router chi.Router, mw *middlewares.Middlewares, scheduleController *schedules.ScheduleController) {
	staffOnly := mw.RequireRoles(constvars.SwasthyaRoleClinicStaff)

	router.With(mw.SessionAuth, staffOnly).Post("/", scheduleController.CreateLeave)
	router.With(mw.SessionAuth, staffOnly).Get("/professionals/{professional_id}", scheduleController.ListLeaves)
	router.With(mw.SessionAuth, staffOnly).Delete("/{leave_id}", scheduleController.DeleteLeave)
}
