package routers

import (
	"swasthya-service/internal/app/services/core/professionals"

	"github.com/go-chi/chi/v5"
)

func attachDirectoryRoutes(router chi.Router, professionalController *professionals.ProfessionalController) {
	router.Get("/professionals", professionalController.Search)
	router.Get("/professionals/{professional_id}", professionalController.FindDetail)
}
