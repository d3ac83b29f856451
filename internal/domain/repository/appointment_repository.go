package repository

import (
	"context"

	"videvida-booking-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindByID returns (nil, nil) when the appointment does not exist.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindByPacienteID(ctx context.Context, pacienteID string) ([]entity.Appointment, error)
	FindByMedicoID(ctx context.Context, medicoID string) ([]entity.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error
}
