package minio

import (
	"context"
	"fmt"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photoadmin/internal/domain/model"
	"photoadmin/internal/infrastructure/objectstore"
)

// Client is the MinIO-backed bucket. It also speaks to B2 and other
// S3-compatible endpoints.
type Client struct {
	minioClient *minio.Client
	cfg         *objectstore.Config
	session     *objectstore.Session
}

func New(cfg *objectstore.Config) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.UseSSL,
		Region:          cfg.Region,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		minioClient: client,
		cfg:         cfg,
	}
	c.session = objectstore.NewSession(cfg.TTL(), c.checkBucket)

	return c, nil
}

func (c *Client) checkBucket(ctx context.Context) error {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	ok, err := c.minioClient.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return objectstore.Upstream("authorize", err)
	}

	if !ok {
		return fmt.Errorf("%w: bucket %s: %w", model.ErrUpstream, c.cfg.Bucket, model.ErrNotFound)
	}

	return nil
}

func (c *Client) Authorize(ctx context.Context, force bool) error {
	return c.session.Ensure(ctx, force)
}

// ResolveBucket returns the bucket name; S3 APIs address buckets by name.
func (c *Client) ResolveBucket(ctx context.Context) (string, error) {
	if err := c.session.Ensure(ctx, false); err != nil {
		return "", err
	}

	return c.cfg.Bucket, nil
}

func (c *Client) PublicURL(key string) string {
	return c.cfg.PublicURL(key)
}

func isAuthError(err error) bool {
	return objectstore.IsAuthCode(minio.ToErrorResponse(err).Code)
}
