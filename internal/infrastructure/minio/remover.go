package minio

import (
	"context"

	"github.com/minio/minio-go/v7"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/infrastructure/objectstore"
)

func (c *Client) Remove(ctx context.Context, key string) error {
	return objectstore.RemoveCurrent(ctx, c, key)
}

func (c *Client) ListVersions(ctx context.Context, prefix string, limit int) ([]entity.ObjectVersion, error) {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	versions, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) ([]entity.ObjectVersion, error) {
		return c.listVersions(ctx, prefix, limit)
	})
	if err != nil {
		return nil, objectstore.Upstream("list versions "+prefix, err)
	}

	return versions, nil
}

func (c *Client) listVersions(ctx context.Context, prefix string, limit int) ([]entity.ObjectVersion, error) {
	// Stops the listing goroutine once limit is reached.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var versions []entity.ObjectVersion

	for obj := range c.minioClient.ListObjects(ctx, c.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    true,
		WithVersions: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}

		if obj.IsDeleteMarker {
			continue
		}

		versions = append(versions, entity.ObjectVersion{
			Key:          obj.Key,
			VersionID:    obj.VersionID,
			IsLatest:     obj.IsLatest,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})

		if limit > 0 && len(versions) >= limit {
			break
		}
	}

	return versions, nil
}

func (c *Client) DeleteVersion(ctx context.Context, versionID, key string) error {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	_, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.minioClient.RemoveObject(ctx, c.cfg.Bucket, key, minio.RemoveObjectOptions{
			VersionID: versionID,
		})
	})

	return objectstore.Upstream("delete "+key, err)
}
