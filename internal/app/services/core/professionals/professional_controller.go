package professionals

import (
	"context"
	"net/http"
	"time"

	"swasthya-service/internal/app/contracts"
	"swasthya-service/internal/app/delivery/http/middlewares"
	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/dto/requests"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfessionalController struct {
	Log                 *zap.Logger
	ProfessionalUsecase contracts.ProfessionalUsecase
	DefaultPageSize     int
}

func NewProfessionalController(logger *zap.Logger, professionalUsecase contracts.ProfessionalUsecase, defaultPageSize int) *ProfessionalController {
	return &ProfessionalController{
		Log:                 logger,
		ProfessionalUsecase: professionalUsecase,
		DefaultPageSize:     defaultPageSize,
	}
}

func (ctrl *ProfessionalController) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePageParams(r, ctrl.DefaultPageSize)
	filter := &contracts.ProfessionalSearchFilter{
		Query:    r.URL.Query().Get(constvars.URLQueryParamSearch),
		Type:     r.URL.Query().Get(constvars.URLQueryParamType),
		City:     r.URL.Query().Get(constvars.URLQueryParamCity),
		Page:     page,
		PageSize: pageSize,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.ProfessionalUsecase.Search(ctx, filter, r.URL.Path)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetProfessionalsSuccessfully, pagination, result)
}

func (ctrl *ProfessionalController) FindDetail(w http.ResponseWriter, r *http.Request) {
	professionalID := chi.URLParam(r, constvars.URLParamProfessionalID)
	if err := utils.ValidateUUIDParam(professionalID, constvars.URLParamProfessionalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfessionalUsecase.FindDetail(ctx, professionalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfessionalDetailSuccessfully, result)
}

func (ctrl *ProfessionalController) ClaimUploadURL(w http.ResponseWriter, r *http.Request) {
	professionalID := chi.URLParam(r, constvars.URLParamProfessionalID)
	if err := utils.ValidateUUIDParam(professionalID, constvars.URLParamProfessionalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session := middlewares.SessionFromContext(r.Context())
	if session == nil || session.Phone == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfessionalUsecase.ClaimUploadURL(ctx, professionalID, session.Phone)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClaimUploadURLSuccessMessage, result)
}

func (ctrl *ProfessionalController) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	professionalID := chi.URLParam(r, constvars.URLParamProfessionalID)
	if err := utils.ValidateUUIDParam(professionalID, constvars.URLParamProfessionalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session := middlewares.SessionFromContext(r.Context())
	if session == nil || session.Phone == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := &requests.SubmitClaim{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfessionalUsecase.SubmitClaim(ctx, professionalID, session.Phone, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ClaimSubmittedSuccessMessage, result)
}

func (ctrl *ProfessionalController) FindClaimDetail(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, constvars.URLParamClaimID)
	if err := utils.ValidateUUIDParam(claimID, constvars.URLParamClaimID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfessionalUsecase.FindClaimDetail(ctx, claimID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClaimDetailSuccessfully, result)
}

func (ctrl *ProfessionalController) DecideClaim(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, constvars.URLParamClaimID)
	if err := utils.ValidateUUIDParam(claimID, constvars.URLParamClaimID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.DecideClaim{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ProfessionalUsecase.DecideClaim(ctx, claimID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClaimDecidedSuccessMessage, nil)
}
