// Package store is the durable key-value storage behind a player profile.
// Values are opaque bytes; callers store JSON.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: key not found")

// KV is a flat key-value store. PutMany is atomic where the backend allows it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	PutMany(ctx context.Context, entries map[string][]byte) error
	Clear(ctx context.Context) error
	Close() error
}

// Put writes a single key.
func Put(ctx context.Context, kv KV, key string, value []byte) error {
	return kv.PutMany(ctx, map[string][]byte{key: value})
}
