// Package repository defines the durable key-value store behind the
// persistence layer. Backends live in the sqlite and filestore subpackages.
package repository

import "context"

// Repository stores opaque values under flat string keys.
type Repository interface {
	// Get returns the stored bytes. A key that was never written yields a
	// not_found AppError.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete forgets key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
