package s3

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"photoadmin/internal/domain/model"
	"photoadmin/internal/infrastructure/objectstore"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-s3-tests"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"expired token", &smithy.GenericAPIError{Code: "ExpiredToken"}, true},
		{"wrapped access denied", fmt.Errorf("put: %w", &smithy.GenericAPIError{Code: "AccessDenied"}), true},
		{"invalid key", &smithy.GenericAPIError{Code: "InvalidAccessKeyId"}, true},
		{"no such key", &smithy.GenericAPIError{Code: "NoSuchKey"}, false},
		{"plain error", errors.New("dial tcp: refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAuthError(tt.err))
		})
	}
}

func setupS3(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(ctx, &objectstore.Config{
		Endpoint:      endpoint,
		Bucket:        BucketName,
		PublicBaseURL: "https://photos.example.com",
		Timeout:       5000,
		AccessKey:     TestAccessKey,
		SecretKey:     TestSecretKey,
	})
	if err != nil {
		t.Fatal("Failed to create s3 client:", err)
	}

	_, err = client.s3Client.CreateBucket(ctx, &s3api.CreateBucketInput{Bucket: aws.String(BucketName)})
	if err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	_, err = client.s3Client.PutBucketVersioning(ctx, &s3api.PutBucketVersioningInput{
		Bucket: aws.String(BucketName),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		t.Fatal("Failed to enable versioning:", err)
	}

	return client
}

func TestClientUploadAndRemove(t *testing.T) {
	client := setupS3(t)
	ctx := context.Background()

	require.NoError(t, client.Authorize(ctx, false))

	key := model.ThumbKey("oslo", 4)
	result, err := client.Upload(ctx, key, []byte("webp"), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/oslo/thumb/img004.webp", result.URL)
	assert.NotEmpty(t, result.VersionID)

	versions, err := client.ListVersions(ctx, key, 10)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.True(t, versions[0].IsLatest)

	require.NoError(t, client.Remove(ctx, key))

	versions, err = client.ListVersions(ctx, key, 10)
	require.NoError(t, err)
	assert.Empty(t, versions)
}
