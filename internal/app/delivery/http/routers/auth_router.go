package routers

import (
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/otp/request", authController.RequestOTP)
	router.Post("/otp/verify", authController.VerifyOTP)
	router.Post("/login", authController.Login)
	router.With(mw.SessionAuth).Post("/logout", authController.Logout)
}
