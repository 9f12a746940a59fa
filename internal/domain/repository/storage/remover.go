package storage

import "context"

type Remover interface {
	// Remove locates the current version of key and deletes it.
	Remove(ctx context.Context, key string) error
}
