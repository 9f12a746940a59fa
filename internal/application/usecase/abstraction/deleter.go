package abstraction

import "context"

// Deleter removes an album together with its remote assets.
type Deleter interface {
	DeleteAlbum(ctx context.Context, slug string) error
}
