package converter

import (
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
)

func ProfileToResponse(profile *entity.Profile, validation *entity.ProfileValidation) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:                profile.ID,
		UserID:            profile.UserID,
		Nome:              profile.Nome,
		Email:             profile.Email,
		Telefone:          profile.Telefone,
		CPF:               profile.CPF,
		DataNascimento:    profile.DataNascimento,
		Endereco:          profile.Endereco,
		DadosMedicos:      profile.DadosMedicos,
		IsProfileComplete: profile.IsProfileComplete,
		Validation:        ValidationToResponse(validation),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

func ValidationToResponse(validation *entity.ProfileValidation) dto.ProfileValidationResponse {
	return dto.ProfileValidationResponse{
		IsValid:              validation.IsValid,
		MissingFields:        validation.MissingFields,
		CompletionPercentage: validation.CompletionPercentage,
	}
}
