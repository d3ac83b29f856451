package repository

import (
	"context"
	"errors"

	"videvida-booking-api/internal/domain/entity"
	domainRepo "videvida-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	type roleCount struct {
		Role  entity.Role
		Count int64
	}
	var counts []roleCount
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	out := make(map[entity.Role]int64, len(counts))
	for _, c := range counts {
		out[c.Role] = c.Count
	}
	return out, nil
}
