package store

import "context"

// Storage key layout. It mirrors the browser-storage keys the front-end
// wrote, so a dump of the mock store is recognizable.
const (
	KeyRegisteredUsers = "videvida:registered_users"
	KeyAppointments    = "videvida:agendamentos"
	KeyProfilePrefix   = "videvida:profile:"
)

// KV is the keyed-blob persistence port backing the mock-mode services.
// Writes are last-writer-wins; no cross-key atomicity is provided.
type KV interface {
	// Get returns the blob stored under key, with found=false when the
	// key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
