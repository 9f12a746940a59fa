package abstraction

import (
	"context"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
)

type ImageAdder interface {
	AddImages(ctx context.Context, slug string, files []dto.UploadFile) (entity.AddImagesResult, error)
}

type ImageDeleter interface {
	DeleteImage(ctx context.Context, slug string, index int) error
}

type ImageReorderer interface {
	ReorderImages(ctx context.Context, slug string, order []int) error
}
