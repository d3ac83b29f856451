package dto

import (
	"time"

	"videvida-booking-api/internal/domain/entity"
)

// UpdateProfileRequest merges into the stored profile: nil fields are left
// untouched, non-nil fields overwrite (including with the empty string).
type UpdateProfileRequest struct {
	Nome           *string               `json:"nome,omitempty" validate:"omitempty,max=100"`
	Email          *string               `json:"email,omitempty" validate:"omitempty,email"`
	Telefone       *string               `json:"telefone,omitempty" validate:"omitempty,max=20"`
	CPF            *string               `json:"cpf,omitempty" validate:"omitempty,max=14"`
	DataNascimento *string               `json:"dataNascimento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Endereco       *UpdateAddressRequest `json:"endereco,omitempty"`
	DadosMedicos   *entity.MedicalData   `json:"dadosMedicos,omitempty"`
}

type UpdateAddressRequest struct {
	CEP         *string `json:"cep,omitempty" validate:"omitempty,max=9"`
	Logradouro  *string `json:"logradouro,omitempty" validate:"omitempty,max=150"`
	Numero      *string `json:"numero,omitempty" validate:"omitempty,max=10"`
	Complemento *string `json:"complemento,omitempty" validate:"omitempty,max=100"`
	Bairro      *string `json:"bairro,omitempty" validate:"omitempty,max=100"`
	Cidade      *string `json:"cidade,omitempty" validate:"omitempty,max=100"`
	Estado      *string `json:"estado,omitempty" validate:"omitempty,max=2"`
}

type ProfileResponse struct {
	ID                string                    `json:"id"`
	UserID            string                    `json:"userId"`
	Nome              string                    `json:"nome"`
	Email             string                    `json:"email"`
	Telefone          string                    `json:"telefone,omitempty"`
	CPF               string                    `json:"cpf,omitempty"`
	DataNascimento    string                    `json:"dataNascimento,omitempty"`
	Endereco          entity.Address            `json:"endereco"`
	DadosMedicos      *entity.MedicalData       `json:"dadosMedicos,omitempty"`
	IsProfileComplete bool                      `json:"isProfileComplete"`
	Validation        ProfileValidationResponse `json:"validation"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

type ProfileValidationResponse struct {
	IsValid              bool     `json:"isValid"`
	MissingFields        []string `json:"missingFields"`
	CompletionPercentage int      `json:"completionPercentage"`
}
