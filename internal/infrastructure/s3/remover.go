package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/infrastructure/objectstore"
)

func (c *Client) Remove(ctx context.Context, key string) error {
	return objectstore.RemoveCurrent(ctx, c, key)
}

func (c *Client) ListVersions(ctx context.Context, prefix string, limit int) ([]entity.ObjectVersion, error) {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	input := &s3api.ListObjectVersionsInput{
		Bucket: aws.String(c.cfg.Bucket),
		Prefix: aws.String(prefix),
	}
	if limit > 0 {
		input.MaxKeys = aws.Int32(int32(limit))
	}

	out, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) (*s3api.ListObjectVersionsOutput, error) {
		return c.s3Client.ListObjectVersions(ctx, input)
	})
	if err != nil {
		return nil, objectstore.Upstream("list versions "+prefix, err)
	}

	versions := make([]entity.ObjectVersion, 0, len(out.Versions))
	for _, v := range out.Versions {
		versions = append(versions, entity.ObjectVersion{
			Key:          aws.ToString(v.Key),
			VersionID:    aws.ToString(v.VersionId),
			IsLatest:     aws.ToBool(v.IsLatest),
			Size:         aws.ToInt64(v.Size),
			LastModified: aws.ToTime(v.LastModified),
		})
	}

	return versions, nil
}

func (c *Client) DeleteVersion(ctx context.Context, versionID, key string) error {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	input := &s3api.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	}
	if versionID != "" {
		input.VersionId = aws.String(versionID)
	}

	_, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) (*s3api.DeleteObjectOutput, error) {
		return c.s3Client.DeleteObject(ctx, input)
	})

	return objectstore.Upstream("delete "+key, err)
}
