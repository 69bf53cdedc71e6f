package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

const DefaultTTL = 2 * time.Hour

// Store keeps values for a limited time. Expired entries read as not found.
type Store interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
