package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no value (or it expired).
var ErrNotFound = errors.New("kv: key not found")

// Store is the ephemeral key-value persistence the storefront relies on:
// session carts, the last-order snapshot, and the current-user record.
// Redis backs it in production; the in-memory implementation serves tests.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
