package s3

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dezh-tech/immortal/pkg/logger"

	"photoadmin/internal/infrastructure/objectstore"
)

const defaultRegion = "us-east-1"

// Client is the aws-sdk-go-v2 bucket driver. Uploads go through the
// multipart manager.
type Client struct {
	s3Client *s3api.Client
	uploader *manager.Uploader
	cfg      *objectstore.Config
	session  *objectstore.Session
}

func New(ctx context.Context, cfg *objectstore.Config) (*Client, error) {
	logger.Info("connecting to s3", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	s3Client := s3api.NewFromConfig(awsCfg, func(o *s3api.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL())
			o.UsePathStyle = true
		}
	})

	c := &Client{
		s3Client: s3Client,
		uploader: manager.NewUploader(s3Client),
		cfg:      cfg,
	}
	c.session = objectstore.NewSession(cfg.TTL(), c.headBucket)

	return c, nil
}

func (c *Client) headBucket(ctx context.Context) error {
	ctx, cancel := c.cfg.WithTimeout(ctx)
	defer cancel()

	_, err := c.s3Client.HeadBucket(ctx, &s3api.HeadBucketInput{
		Bucket: aws.String(c.cfg.Bucket),
	})

	return objectstore.Upstream("authorize", err)
}

func (c *Client) Authorize(ctx context.Context, force bool) error {
	return c.session.Ensure(ctx, force)
}

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
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return objectstore.IsAuthCode(apiErr.ErrorCode())
}
