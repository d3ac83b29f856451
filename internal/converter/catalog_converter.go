package converter

import (
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:                    doctor.ID,
		Nome:                  doctor.Nome,
		CRM:                   doctor.CRM,
		Especialidade:         doctor.Especialidade,
		Email:                 doctor.Email,
		Telefone:              doctor.Telefone,
		TratamentosOferecidos: doctor.TratamentosOferecidos,
		Avaliacao:             doctor.Avaliacao,
	}
}

func DoctorsToResponse(doctors []entity.Doctor) []dto.DoctorResponse {
	out := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, *DoctorToResponse(&doctors[i]))
	}
	return out
}

func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	return &dto.TreatmentResponse{
		ID:                      treatment.ID,
		Nome:                    treatment.Nome,
		Descricao:               treatment.Descricao,
		Duracao:                 treatment.Duracao,
		Preco:                   treatment.Preco,
		EspecialidadeNecessaria: treatment.EspecialidadeNecessaria,
		MedicosDisponiveis:      treatment.MedicosDisponiveis,
	}
}

func TreatmentsToResponse(treatments []entity.Treatment) []dto.TreatmentResponse {
	out := make([]dto.TreatmentResponse, 0, len(treatments))
	for i := range treatments {
		out = append(out, *TreatmentToResponse(&treatments[i]))
	}
	return out
}
