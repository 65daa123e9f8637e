package appointments

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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

// CreateBooking is the public booking endpoint. Its success and error bodies
// follow the published wire contract, so all failures, including validation,
// go through BuildBookingErrorResponse instead of the internal envelope.
func (ctrl *AppointmentController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateBooking{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildBookingErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateBooking(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildBookingErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildBookingErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildBookingSuccessResponse(w, result)
}

func (ctrl *AppointmentController) ListSlots(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListSlots{
		ClinicID: r.URL.Query().Get(constvars.URLQueryParamClinicID),
		DoctorID: r.URL.Query().Get(constvars.URLQueryParamDoctorID),
		Date:     r.URL.Query().Get(constvars.URLQueryParamDate),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListSlots(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessfully, result)
}

// resolveClinicID checks the URL clinic against the staff session, same rule
// as the schedule endpoints.
func (ctrl *AppointmentController) resolveClinicID(r *http.Request) (string, error) {
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

func (ctrl *AppointmentController) ListByDate(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListByDate(ctx, clinicID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessfully, result)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	clinicID, err := ctrl.resolveClinicID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := utils.ValidateUUIDParam(appointmentID, constvars.URLParamAppointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.UpdateAppointmentStatus{}
	if err := utils.ParseAndValidateRequest(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, clinicID, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccessfully, result)
}
