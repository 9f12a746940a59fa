package minio

import (
	"bytes"
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/infrastructure/objectstore"
)

func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string,
) (entity.UploadResult, error) {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	info, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) (minio.UploadInfo, error) {
		return c.minioClient.PutObject(ctx, c.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{
				ContentType: contentType,
			})
	})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.UploadResult{}, objectstore.Upstream("upload "+key, err)
	}

	return entity.UploadResult{
		Key:         key,
		URL:         c.cfg.PublicURL(key),
		VersionID:   info.VersionID,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}
