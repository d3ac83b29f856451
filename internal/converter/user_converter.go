package converter

import (
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Nome:      user.FullName,
		Tipo:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
