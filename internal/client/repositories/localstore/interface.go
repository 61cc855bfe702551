// Package localstore persists small named values across runs, playing the
// role the browser's localStorage plays for the web client.
package localstore

import "context"

// Repository is a key-value store for client-local persisted state.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
