package repositories

import (
	"context"
	"io"
)

// PhotoStore is the port for binary photo asset storage. Assets are keyed by
// an opaque, collision-free key generated by the store; keys never encode
// item ids or user input.
type PhotoStore interface {
	// Save streams r to a new uniquely-keyed asset and returns the key.
	Save(ctx context.Context, r io.Reader) (key string, err error)

	// Read opens the asset for streaming. Returns ErrPhotoNotFound when the
	// key is unknown or the underlying file is missing.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the asset. Deleting an absent key succeeds silently.
	Delete(ctx context.Context, key string) error

	// Keys lists the keys of all stored assets (used by the orphan sweeper).
	Keys(ctx context.Context) ([]string, error)
}
