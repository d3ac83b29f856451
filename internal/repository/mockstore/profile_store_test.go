package mockstore

import (
	"context"
	"testing"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	stores := map[string]store.KV{
		"memory": store.NewMemoryStore(),
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	stores["redis"] = store.NewRedisStore(client)

	for name, kv := range stores {
		t.Run(name, func(t *testing.T) {
			repo := NewProfileStore(kv, testLogger(), 0)
			ctx := context.Background()

			missing, err := repo.FindByUserID(ctx, "1")
			require.NoError(t, err)
			assert.Nil(t, missing)

			profile := &entity.Profile{
				ID:       "profile_1",
				UserID:   "1",
				Nome:     "João Silva",
				Email:    "paciente@email.com",
				Telefone: "(11) 99999-0000",
				Endereco: entity.Address{Cidade: "São Paulo", Estado: "SP"},
			}
			require.NoError(t, repo.Save(ctx, profile))

			found, err := repo.FindByUserID(ctx, "1")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "João Silva", found.Nome)
			assert.Equal(t, "São Paulo", found.Endereco.Cidade)

			// Save is an upsert.
			profile.Telefone = "(11) 98888-1111"
			require.NoError(t, repo.Save(ctx, profile))

			found, err = repo.FindByUserID(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, "(11) 98888-1111", found.Telefone)
		})
	}
}

func TestProfileStoreCorruptBlobTreatedAsAbsent(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.KeyProfilePrefix+"1", []byte("not json")))

	repo := NewProfileStore(kv, testLogger(), 0)
	found, err := repo.FindByUserID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, found)
}
