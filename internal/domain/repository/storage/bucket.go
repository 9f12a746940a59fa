package storage

import "context"

// Bucket is the remote object store an album's images live in.
type Bucket interface {
	Uploader
	Remover
	Versioner
	// Authorize is idempotent while the session is fresh; force refreshes it.
	Authorize(ctx context.Context, force bool) error
	ResolveBucket(ctx context.Context) (string, error)
	PublicURL(key string) string
}
