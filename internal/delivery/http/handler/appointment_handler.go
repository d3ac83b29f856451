package handler

import (
	"encoding/json"
	"net/http"

	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/delivery/http/middleware"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/usecase"
	"videvida-booking-api/pkg/response"
	"videvida-booking-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListAppointments lists the caller's appointments
// @Summary List own appointments
// @Description Pacientes see their bookings, medicos their agenda
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForUser(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CreateAppointment books a new appointment
// @Summary Book an appointment
// @Description End time is derived from the treatment duration
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// CancelAppointment cancels an appointment
// @Summary Cancel an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), userID, role, mux.Vars(r)["id"])
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// ConfirmAppointment confirms a scheduled appointment
// @Summary Confirm an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointment, err := h.appointmentUsecase.Confirm(r.Context(), userID, role, mux.Vars(r)["id"])
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", appointment)
}

func (h *AppointmentHandler) writeStatusError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrAppointmentNotOwned:
		response.Forbidden(w, "Appointment does not belong to this user")
	case usecase.ErrAppointmentCancelled, usecase.ErrInvalidStatusTransition:
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to update appointment")
	}
}

func callerFromContext(r *http.Request) (string, entity.Role, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	return userID, role, true
}
