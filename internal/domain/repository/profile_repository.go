package repository

import (
	"context"

	"videvida-booking-api/internal/domain/entity"
)

type ProfileRepository interface {
	// FindByUserID returns (nil, nil) when the user has no stored profile.
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// Save inserts or replaces the profile keyed by its user id.
	Save(ctx context.Context, profile *entity.Profile) error
}
