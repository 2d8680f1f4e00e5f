package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-entry time-to-live, shared by all
// concurrent requests. Entries are never invalidated on write; they simply
// expire.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
