package storage

import (
	"context"

	"photoadmin/internal/domain/entity"
)

type Versioner interface {
	ListVersions(ctx context.Context, prefix string, limit int) ([]entity.ObjectVersion, error)
	DeleteVersion(ctx context.Context, versionID, key string) error
}
