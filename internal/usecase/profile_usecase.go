package usecase

import (
	"context"
	"time"

	"videvida-booking-api/internal/converter"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/domain/repository"
	"videvida-booking-api/internal/service"

	"github.com/sirupsen/logrus"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetValidation(ctx context.Context, userID string) (*dto.ProfileValidationResponse, error)
}

type profileUsecase struct {
	log         *logrus.Logger
	profileRepo repository.ProfileRepository
	directory   service.Directory
}

func NewProfileUsecase(
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	directory service.Directory,
) ProfileUsecase {
	return &profileUsecase{
		log:         log,
		profileRepo: profileRepo,
		directory:   directory,
	}
}

// GetProfile returns the stored profile, creating a skeleton from the
// user's registration data on first access.
func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := u.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	validation := entity.ValidateProfile(profile)
	return converter.ProfileToResponse(profile, &validation), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(profile, req)

	// Completeness is always recomputed from the merged record, never
	// trusted from the request.
	validation := entity.ValidateProfile(profile)
	profile.IsProfileComplete = validation.IsValid
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.Save(ctx, profile); err != nil {
		u.log.Warnf("Failed to save profile for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.ProfileToResponse(profile, &validation), nil
}

func (u *profileUsecase) GetValidation(ctx context.Context, userID string) (*dto.ProfileValidationResponse, error) {
	profile, err := u.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	validation := entity.ValidateProfile(profile)
	resp := converter.ValidationToResponse(&validation)
	return &resp, nil
}

func (u *profileUsecase) loadOrCreate(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	user, err := u.directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	profile = &entity.Profile{
		ID:        "profile_" + userID,
		UserID:    userID,
		Nome:      user.FullName,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.profileRepo.Save(ctx, profile); err != nil {
		u.log.Warnf("Failed to persist skeleton profile for user %s: %+v", userID, err)
		return nil, err
	}
	return profile, nil
}

func applyProfileUpdate(profile *entity.Profile, req *dto.UpdateProfileRequest) {
	if req.Nome != nil {
		profile.Nome = *req.Nome
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Telefone != nil {
		profile.Telefone = *req.Telefone
	}
	if req.CPF != nil {
		profile.CPF = *req.CPF
	}
	if req.DataNascimento != nil {
		profile.DataNascimento = *req.DataNascimento
	}
	if req.DadosMedicos != nil {
		profile.DadosMedicos = req.DadosMedicos
	}
	if req.Endereco != nil {
		applyAddressUpdate(&profile.Endereco, req.Endereco)
	}
}

func applyAddressUpdate(address *entity.Address, req *dto.UpdateAddressRequest) {
	if req.CEP != nil {
		address.CEP = *req.CEP
	}
	if req.Logradouro != nil {
		address.Logradouro = *req.Logradouro
	}
	if req.Numero != nil {
		address.Numero = *req.Numero
	}
	if req.Complemento != nil {
		address.Complemento = *req.Complemento
	}
	if req.Bairro != nil {
		address.Bairro = *req.Bairro
	}
	if req.Cidade != nil {
		address.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		address.Estado = *req.Estado
	}
}
