package s3

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dezh-tech/immortal/pkg/logger"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/infrastructure/objectstore"
)

func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string,
) (entity.UploadResult, error) {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	out, err := objectstore.Do(ctx, c.session, isAuthError, func(ctx context.Context) (*manager.UploadOutput, error) {
		return c.uploader.Upload(ctx, &s3api.PutObjectInput{
			Bucket:      aws.String(c.cfg.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
	})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.UploadResult{}, objectstore.Upstream("upload "+key, err)
	}

	return entity.UploadResult{
		Key:         key,
		URL:         c.cfg.PublicURL(key),
		VersionID:   aws.ToString(out.VersionID),
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}
