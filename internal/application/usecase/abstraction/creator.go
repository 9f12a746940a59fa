package abstraction

import (
	"context"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/model"
)

type Creator interface {
	CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (*model.Album, error)
}
