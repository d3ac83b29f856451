package dto

import (
	"time"

	"videvida-booking-api/internal/domain/entity"
)

type CreateAppointmentRequest struct {
	MedicoID     string `json:"medicoId" validate:"required"`
	TratamentoID string `json:"tratamentoId" validate:"required"`
	Data         string `json:"data" validate:"required,datetime=2006-01-02"`
	HoraInicio   string `json:"horaInicio" validate:"required,datetime=15:04"`
	Observacoes  string `json:"observacoes,omitempty" validate:"omitempty,max=500"`
}

// AppointmentResponse enriches the stored record with the catalog names
// the listing pages render.
type AppointmentResponse struct {
	ID             string                   `json:"id"`
	PacienteID     string                   `json:"pacienteId"`
	MedicoID       string                   `json:"medicoId"`
	MedicoNome     string                   `json:"medicoNome,omitempty"`
	TratamentoID   string                   `json:"tratamentoId"`
	TratamentoNome string                   `json:"tratamentoNome,omitempty"`
	Data           string                   `json:"data"`
	HoraInicio     string                   `json:"horaInicio"`
	HoraFim        string                   `json:"horaFim"`
	Status         entity.AppointmentStatus `json:"status"`
	Observacoes    string                   `json:"observacoes,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}
