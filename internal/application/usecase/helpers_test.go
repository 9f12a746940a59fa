package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/infrastructure/filesystem"
)

const testCDN = "https://cdn.test/"

type fakeBucket struct {
	objects    map[string][]byte
	removed    []string
	failUpload map[string]bool
	failRemove bool
	authorized int
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		objects:    map[string][]byte{},
		failUpload: map[string]bool{},
	}
}

func (b *fakeBucket) Upload(_ context.Context, key string, data []byte, contentType string,
) (entity.UploadResult, error) {
	if b.failUpload[key] {
		return entity.UploadResult{}, fmt.Errorf("%w: upload %s refused", model.ErrUpstream, key)
	}

	b.objects[key] = data

	return entity.UploadResult{
		Key:         key,
		URL:         b.PublicURL(key),
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (b *fakeBucket) Remove(_ context.Context, key string) error {
	if b.failRemove {
		return errors.New("remote unavailable")
	}

	if _, ok := b.objects[key]; !ok {
		return fmt.Errorf("%w: %s", model.ErrNotFound, key)
	}

	delete(b.objects, key)
	b.removed = append(b.removed, key)

	return nil
}

func (b *fakeBucket) ListVersions(_ context.Context, prefix string, _ int) ([]entity.ObjectVersion, error) {
	var versions []entity.ObjectVersion
	for key := range b.objects {
		if strings.HasPrefix(key, prefix) {
			versions = append(versions, entity.ObjectVersion{Key: key, VersionID: "v1", IsLatest: true})
		}
	}

	return versions, nil
}

func (b *fakeBucket) DeleteVersion(ctx context.Context, _, key string) error {
	return b.Remove(ctx, key)
}

func (b *fakeBucket) Authorize(context.Context, bool) error {
	b.authorized++

	return nil
}

func (b *fakeBucket) ResolveBucket(context.Context) (string, error) { return "test", nil }

func (b *fakeBucket) PublicURL(key string) string { return testCDN + key }

// fakeProcessor accepts any payload starting with "img" as a 300x200 PNG.
type fakeProcessor struct{}

func (fakeProcessor) Inspect(data []byte) (entity.ImageInfo, error) {
	if !bytes.HasPrefix(data, []byte("img")) {
		return entity.ImageInfo{}, fmt.Errorf("%w: unsupported file type", model.ErrBadRequest)
	}

	return entity.ImageInfo{MimeType: "image/png", Width: 300, Height: 200}, nil
}

func (fakeProcessor) ToJPEG(data []byte, _ entity.ImageInfo, _ int) ([]byte, error) {
	return append([]byte("jpeg:"), data...), nil
}

func (fakeProcessor) Thumbnail(data []byte, _, _ int) ([]byte, error) {
	if bytes.Contains(data, []byte("corrupt")) {
		return nil, errors.New("cannot decode")
	}

	return append([]byte("webp:"), data...), nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, message string) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func eventWith(action string) interface{} {
	return mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, `"action":"`+action+`"`)
	})
}

type harness struct {
	cfg       filesystem.Config
	files     *filesystem.AlbumFiles
	orders    *filesystem.OrderFile
	bucket    *fakeBucket
	publisher *mockPublisher
	pipeline  *Pipeline
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	root := t.TempDir()
	cfg := filesystem.Config{
		PostsDir:  filepath.Join(root, "_posts"),
		AlbumsDir: filepath.Join(root, "_data", "albums"),
		OrderFile: filepath.Join(root, "_data", "albums", "order.json"),
	}

	files, err := filesystem.NewAlbumFiles(cfg)
	require.NoError(t, err)

	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	bucket := newFakeBucket()

	return &harness{
		cfg:       cfg,
		files:     files,
		orders:    filesystem.NewOrderFile(cfg.OrderFile),
		bucket:    bucket,
		publisher: publisher,
		pipeline:  NewPipeline(bucket, fakeProcessor{}, PipelineConfig{}),
	}
}

func (h *harness) creator() *Creator {
	c := NewCreator(h.files, h.files, h.pipeline, h.publisher)
	c.now = func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

	return c
}

func (h *harness) lister() *Lister {
	return NewLister(h.files, h.files, h.orders)
}

func (h *harness) seed(t *testing.T, title, date string, n int) *model.Album {
	t.Helper()

	album, err := h.creator().CreateAlbum(context.Background(), dto.CreateAlbumRequest{
		Title: title,
		Date:  date,
		Files: uploads(n),
	})
	require.NoError(t, err)

	return album
}

func uploads(n int) []dto.UploadFile {
	files := make([]dto.UploadFile, n)
	for i := range files {
		files[i] = dto.UploadFile{
			Name: fmt.Sprintf("photo%d.png", i),
			Data: []byte(fmt.Sprintf("img-%d", i)),
		}
	}

	return files
}
