package store

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVImplementations(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	stores := map[string]KV{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client),
	}

	for name, kv := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))

			value, found, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte(`{"a":1}`), value)

			// Last writer wins.
			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":2}`)))
			value, _, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), value)

			require.NoError(t, kv.Delete(ctx, "k"))
			_, found, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'x'

	value, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	value[0] = 'y'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
