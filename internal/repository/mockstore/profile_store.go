package mockstore

import (
	"context"
	"encoding/json"
	"time"

	"videvida-booking-api/internal/domain/entity"
	domainRepo "videvida-booking-api/internal/domain/repository"
	"videvida-booking-api/internal/store"

	"github.com/sirupsen/logrus"
)

type profileStore struct {
	kv      store.KV
	log     *logrus.Logger
	latency time.Duration
}

func NewProfileStore(kv store.KV, log *logrus.Logger, latency time.Duration) domainRepo.ProfileRepository {
	return &profileStore{kv: kv, log: log, latency: latency}
}

func (s *profileStore) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	blob, found, err := s.kv.Get(ctx, store.KeyProfilePrefix+userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var profile entity.Profile
	if err := json.Unmarshal(blob, &profile); err != nil {
		// Corrupt blobs behave like an absent profile.
		s.log.Warnf("Failed to parse stored profile for user %s: %+v", userID, err)
		return nil, nil
	}
	return &profile, nil
}

func (s *profileStore) Save(ctx context.Context, profile *entity.Profile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// Persistence failures are logged and swallowed; the caller keeps the
	// updated in-memory profile.
	if err := s.kv.Set(ctx, store.KeyProfilePrefix+profile.UserID, blob); err != nil {
		s.log.Warnf("Failed to persist profile for user %s: %+v", profile.UserID, err)
	}
	return nil
}
