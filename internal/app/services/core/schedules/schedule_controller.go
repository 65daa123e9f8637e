package schedules

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

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

// resolveClinicID checks the URL clinic against the staff session. Staff can
// only manage their own clinic; API-key (superadmin) requests carry no
// session and pass through.
func (ctrl *ScheduleController) resolveClinicID(r *http.Request) (string, error) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUUIDParam(clinicID, constvars.URLParamClinicID); err != nil {
		return "", err
	}

	session := middlewares.SessionFromContext(r.Context())
	if session != nil && session.ClinicID != "" && session.ClinicID != clinicID {
		return "", exceptions.ErrNotAuthorized(nil)
	}
	return clinicID, nil
}

func (ctrl *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.CreateSchedule{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CreateSchedule(ctx, clinicID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScheduleSuccessMessage, result)
}

func (ctrl *ScheduleController) ListSchedules(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	professionalID := chi.URLParam(r, constvars.URLParamProfessionalID)
	if err := utils.ValidateUUIDParam(professionalID, constvars.URLParamProfessionalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.ListSchedules(ctx, clinicID, professionalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccessfully, result)
}

func (ctrl *ScheduleController) DeactivateSchedule(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)
	if err := utils.ValidateUUIDParam(scheduleID, constvars.URLParamScheduleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ScheduleUsecase.DeactivateSchedule(ctx, clinicID, scheduleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeactivateScheduleSuccessMessage, nil)
}

func (ctrl *ScheduleController) CreateLeave(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.CreateLeave{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CreateLeave(ctx, clinicID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLeaveSuccessMessage, result)
}

func (ctrl *ScheduleController) ListLeaves(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	professionalID := chi.URLParam(r, constvars.URLParamProfessionalID)
	if err := utils.ValidateUUIDParam(professionalID, constvars.URLParamProfessionalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.ListLeaves(ctx, clinicID, professionalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLeavesSuccessfully, result)
}

func (ctrl *ScheduleController) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	leaveID := chi.URLParam(r, constvars.URLParamLeaveID)
	if err := utils.ValidateUUIDParam(leaveID, constvars.URLParamLeaveID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ScheduleUsecase.DeleteLeave(ctx, clinicID, leaveID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLeaveSuccessMessage, nil)
}
