package usecase

import (
	"context"
	"errors"
	"time"

	"videvida-booking-api/internal/catalog"
	"videvida-booking-api/internal/converter"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrTreatmentNotFound       = errors.New("treatment not found")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotOwned     = errors.New("appointment does not belong to this user")
	ErrAppointmentCancelled    = errors.New("appointment is already cancelled")
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
)

type AppointmentUsecase interface {
	ListForUser(ctx context.Context, userID string, role entity.Role) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, pacienteID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, userID string, role entity.Role, appointmentID string) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, userID string, role entity.Role, appointmentID string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	catalog         *catalog.Catalog
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	cat *catalog.Catalog,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		catalog:         cat,
	}
}

func (u *appointmentUsecase) ListForUser(ctx context.Context, userID string, role entity.Role) ([]dto.AppointmentResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	if role == entity.RoleMedico {
		appointments, err = u.appointmentRepo.FindByMedicoID(ctx, userID)
	} else {
		appointments, err = u.appointmentRepo.FindByPacienteID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", userID, err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments, u.catalog), nil
}

// Create books an appointment. Only the presence of the referenced doctor
// and treatment is checked; slot collisions are not rejected, so two
// bookings for the same doctor, date and time both succeed.
func (u *appointmentUsecase) Create(ctx context.Context, pacienteID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if u.catalog.DoctorByID(req.MedicoID) == nil {
		return nil, ErrDoctorNotFound
	}
	treatment := u.catalog.TreatmentByID(req.TratamentoID)
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	now := time.Now()
	appointment := &entity.Appointment{
		ID:           entity.NewAppointmentID(now),
		PacienteID:   pacienteID,
		MedicoID:     req.MedicoID,
		TratamentoID: req.TratamentoID,
		Data:         req.Data,
		HoraInicio:   req.HoraInicio,
		HoraFim:      entity.CalculateEndTime(req.HoraInicio, treatment.Duracao),
		Status:       entity.StatusAgendado,
		Observacoes:  req.Observacoes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s booked for paciente %s with medico %s", appointment.ID, pacienteID, req.MedicoID)
	return converter.AppointmentToResponse(appointment, u.catalog), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, userID string, role entity.Role, appointmentID string) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, userID, role, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.IsCancelado() {
		return nil, ErrAppointmentCancelled
	}
	if !appointment.CanTransitionTo(entity.StatusCancelado) {
		return nil, ErrInvalidStatusTransition
	}

	appointment.Cancel()
	if err := u.appointmentRepo.UpdateStatus(ctx, appointment.ID, entity.StatusCancelado); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.catalog), nil
}

// Confirm moves an appointment from agendado to confirmado. Only the
// assigned medico or an admin may confirm.
func (u *appointmentUsecase) Confirm(ctx context.Context, userID string, role entity.Role, appointmentID string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if role != entity.RoleAdmin && !(role == entity.RoleMedico && appointment.MedicoID == userID) {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.CanTransitionTo(entity.StatusConfirmado) {
		return nil, ErrInvalidStatusTransition
	}

	appointment.Confirm()
	if err := u.appointmentRepo.UpdateStatus(ctx, appointment.ID, entity.StatusConfirmado); err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.catalog), nil
}

func (u *appointmentUsecase) findOwned(ctx context.Context, userID string, role entity.Role, appointmentID string) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	switch role {
	case entity.RoleAdmin:
	case entity.RoleMedico:
		if appointment.MedicoID != userID {
			return nil, ErrAppointmentNotOwned
		}
	default:
		if appointment.PacienteID != userID {
			return nil, ErrAppointmentNotOwned
		}
	}
	return appointment, nil
}
