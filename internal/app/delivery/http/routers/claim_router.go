package routers

import (
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/app/services/core/clinics"
	"swasthya-service/internal/app/services/core/professionals"
	"swasthya-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachClaimRoutes(router chi.Router, mw *middlewares.Middlewares, professionalController *professionals.ProfessionalController) {
	patientOnly := mw.RequireRoles(constvars.SwasthyaRolePatient)

	router.With(mw.SessionAuth, patientOnly).Post("/{professional_id}/claim", professionalController.SubmitClaim)
	router.With(mw.SessionAuth, patientOnly).Post("/{professional_id}/claim/upload-url", professionalController.ClaimUploadURL)
}

func attachAdminRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	clinicController *clinics.ClinicController,
	professionalController *professionals.ProfessionalController,
) {
	router.With(mw.RequireSuperadmin).Patch("/clinics/{clinic_id}/verify", clinicController.Verify)
	router.With(mw.RequireSuperadmin).Get("/claims/{claim_id}", professionalController.FindClaimDetail)
	router.With(mw.RequireSuperadmin).Patch("/claims/{claim_id}", professionalController.DecideClaim)
}
