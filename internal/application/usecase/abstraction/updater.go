package abstraction

import (
	"context"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/model"
)

type Updater interface {
	UpdateAlbumMetadata(ctx context.Context, slug string, patch dto.AlbumPatch) (*model.Album, error)
}
