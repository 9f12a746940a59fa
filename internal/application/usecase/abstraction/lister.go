package abstraction

import (
	"context"

	"photoadmin/internal/domain/model"
)

type Lister interface {
	ListAlbums(ctx context.Context) ([]model.Album, error)
	GetAlbum(ctx context.Context, slug string) (*model.Album, error)
}
