package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dezh-tech/immortal/pkg/logger"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/imaging"
	"photoadmin/internal/domain/repository/storage"
)

const (
	defaultMaxFileSize  = 50 << 20
	defaultJPEGQuality  = 95
	defaultThumbWidth   = 600
	defaultThumbQuality = 85
)

type PipelineConfig struct {
	MaxFileSize  int64 `yaml:"max_file_size"`
	JPEGQuality  int   `yaml:"jpeg_quality"`
	ThumbWidth   int   `yaml:"thumb_width"`
	ThumbQuality int   `yaml:"thumb_quality"`
}

func (c PipelineConfig) withDefaults() PipelineConfig {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = defaultMaxFileSize
	}
	if c.JPEGQuality <= 0 {
		c.JPEGQuality = defaultJPEGQuality
	}
	if c.ThumbWidth <= 0 {
		c.ThumbWidth = defaultThumbWidth
	}
	if c.ThumbQuality <= 0 {
		c.ThumbQuality = defaultThumbQuality
	}

	return c
}

// Pipeline turns submitted files into stored album images.
type Pipeline struct {
	bucket    storage.Bucket
	processor imaging.Processor
	cfg       PipelineConfig
}

func NewPipeline(bucket storage.Bucket, processor imaging.Processor, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		bucket:    bucket,
		processor: processor,
		cfg:       cfg.withDefaults(),
	}
}

// Process stores files as images of slug numbered from start, strictly in
// submission order. Nothing is left behind in the bucket on failure.
func (p *Pipeline) Process(ctx context.Context, slug string, start int, files []dto.UploadFile) ([]model.Image, error) {
	infos, err := p.validate(files)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return []model.Image{}, nil
	}

	if err := p.bucket.Authorize(ctx, false); err != nil {
		return nil, upstream(err)
	}

	images := make([]model.Image, 0, len(files))
	var uploaded []string

	for i, file := range files {
		img, keys, err := p.store(ctx, slug, start+i, file, infos[i])
		uploaded = append(uploaded, keys...)
		if err != nil {
			p.cleanup(ctx, uploaded)

			return nil, fmt.Errorf("storing %s: %w", file.Name, upstream(err))
		}

		images = append(images, img)
	}

	return images, nil
}

func (p *Pipeline) validate(files []dto.UploadFile) ([]entity.ImageInfo, error) {
	infos := make([]entity.ImageInfo, 0, len(files))

	for _, file := range files {
		if len(file.Data) == 0 {
			return nil, fmt.Errorf("%w: %s is empty", model.ErrBadRequest, file.Name)
		}

		if int64(len(file.Data)) > p.cfg.MaxFileSize {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", model.ErrBadRequest, file.Name, p.cfg.MaxFileSize)
		}

		info, err := p.processor.Inspect(file.Data)
		if err != nil {
			if !errors.Is(err, model.ErrBadRequest) {
				err = fmt.Errorf("%w: %w", model.ErrBadRequest, err)
			}

			return nil, fmt.Errorf("%s: %w", file.Name, err)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// store uploads one original and its thumbnail, returning the keys written.
func (p *Pipeline) store(ctx context.Context, slug string, n int, file dto.UploadFile, info entity.ImageInfo,
) (model.Image, []string, error) {
	var keys []string

	original, err := p.processor.ToJPEG(file.Data, info, p.cfg.JPEGQuality)
	if err != nil {
		return model.Image{}, keys, err
	}

	full, err := p.bucket.Upload(ctx, model.ImageKey(slug, n), original, "image/jpeg")
	if err != nil {
		return model.Image{}, keys, err
	}
	keys = append(keys, full.Key)

	thumbnail, err := p.processor.Thumbnail(file.Data, p.cfg.ThumbWidth, p.cfg.ThumbQuality)
	if err != nil {
		return model.Image{}, keys, err
	}

	thumb, err := p.bucket.Upload(ctx, model.ThumbKey(slug, n), thumbnail, "image/webp")
	if err != nil {
		return model.Image{}, keys, err
	}
	keys = append(keys, thumb.Key)

	return model.Image{
		URL:         full.URL,
		Thumb:       thumb.URL,
		AspectRatio: model.AspectRatio(info.Width, info.Height),
		Width:       info.Width,
		Height:      info.Height,
	}, keys, nil
}

func (p *Pipeline) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := p.bucket.Remove(ctx, key); err != nil {
			logger.Error("failed to clean up uploaded object", "key", key, "err", err)
		}
	}
}

func upstream(err error) error {
	if errors.Is(err, model.ErrUpstream) || errors.Is(err, model.ErrBadRequest) {
		return err
	}

	return fmt.Errorf("%w: %w", model.ErrUpstream, err)
}
