package routers

import (
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/services/core/appointments"
	"swasthya-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPublicBookingRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateBooking)
	router.Get("/slots", appointmentController.ListSlots)
}

func attachClinicAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	staffOnly := mw.RequireRoles(constvars.SwasthyaRoleClinicStaff)

	router.With(mw.SessionAuth, staffOnly).Get("/", appointmentController.ListByDate)
	router.With(mw.SessionAuth, staffOnly).Patch("/{appointment_id}/status", appointmentController.UpdateStatus)
}
