package converter

import (
	"videvida-booking-api/internal/catalog"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
)

// AppointmentToResponse resolves catalog names for rendering. Unknown ids
// leave the name fields empty rather than failing.
func AppointmentToResponse(appointment *entity.Appointment, cat *catalog.Catalog) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:           appointment.ID,
		PacienteID:   appointment.PacienteID,
		MedicoID:     appointment.MedicoID,
		TratamentoID: appointment.TratamentoID,
		Data:         appointment.Data,
		HoraInicio:   appointment.HoraInicio,
		HoraFim:      appointment.HoraFim,
		Status:       appointment.Status,
		Observacoes:  appointment.Observacoes,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}

	if doctor := cat.DoctorByID(appointment.MedicoID); doctor != nil {
		resp.MedicoNome = doctor.Nome
	}
	if treatment := cat.TreatmentByID(appointment.TratamentoID); treatment != nil {
		resp.TratamentoNome = treatment.Nome
	}
	return resp
}

func AppointmentsToResponse(appointments []entity.Appointment, cat *catalog.Catalog) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, *AppointmentToResponse(&appointments[i], cat))
	}
	return out
}
