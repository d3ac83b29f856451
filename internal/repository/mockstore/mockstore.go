// Package mockstore implements the domain repositories over the keyed-blob
// store port, reproducing the behavior of the browser-storage mock backend:
// whole collections serialized as JSON blobs, simulated request latency,
// last-writer-wins on concurrent writes, and persistence failures that are
// logged and swallowed rather than surfaced.
package mockstore

import (
	"context"
	"time"
)

// wait simulates mock-service latency, honoring context cancellation.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	select {
	case <-time.After(latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
