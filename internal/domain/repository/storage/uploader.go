package storage

import (
	"context"

	"photoadmin/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (entity.UploadResult, error)
}
