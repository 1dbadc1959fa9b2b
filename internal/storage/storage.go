package storage

import (
	"context"
	"io"
)

// ObjectStorage abstracts image upload storage. Implementations return a
// publicly reachable URL alongside the storage key used for later deletion.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
	Delete(ctx context.Context, key string) error
}
