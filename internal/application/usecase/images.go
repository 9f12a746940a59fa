package usecase

import (
	"context"
	"fmt"
	"slices"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
	"photoadmin/internal/domain/repository/storage"
)

type ImageAdder struct {
	retriever album.Retriever
	writer    album.Writer
	pipeline  *Pipeline
	notifier
}

func NewImageAdder(retriever album.Retriever, writer album.Writer, pipeline *Pipeline, publisher broker.Publisher,
) *ImageAdder {
	return &ImageAdder{
		retriever: retriever,
		writer:    writer,
		pipeline:  pipeline,
		notifier:  notifier{publisher: publisher},
	}
}

// AddImages appends files to the album. Numbering continues past the highest
// stored imgNNN so that earlier deletions cannot cause key collisions.
func (a *ImageAdder) AddImages(ctx context.Context, slug string, files []dto.UploadFile,
) (entity.AddImagesResult, error) {
	post, err := loadAlbum(a.retriever, slug)
	if err != nil {
		return entity.AddImagesResult{}, err
	}

	if len(files) == 0 {
		return entity.AddImagesResult{}, fmt.Errorf("%w: no images provided", model.ErrBadRequest)
	}

	added, err := a.pipeline.Process(ctx, slug, model.NextImageIndex(post.Meta.Images), files)
	if err != nil {
		return entity.AddImagesResult{}, err
	}

	post.Meta.Images = append(post.Meta.Images, added...)
	if err := writeImages(a.writer, post); err != nil {
		return entity.AddImagesResult{}, err
	}

	a.notify(ctx, entity.ActionImagesAdded, slug)

	return entity.AddImagesResult{
		AddedCount:  len(added),
		TotalImages: len(post.Meta.Images),
	}, nil
}

type ImageDeleter struct {
	retriever album.Retriever
	writer    album.Writer
	remover   storage.Remover
	notifier
}

func NewImageDeleter(retriever album.Retriever, writer album.Writer, remover storage.Remover,
	publisher broker.Publisher,
) *ImageDeleter {
	return &ImageDeleter{
		retriever: retriever,
		writer:    writer,
		remover:   remover,
		notifier:  notifier{publisher: publisher},
	}
}

// DeleteImage drops the image at index. Remote files are not renumbered.
func (d *ImageDeleter) DeleteImage(ctx context.Context, slug string, index int) error {
	post, err := loadAlbum(d.retriever, slug)
	if err != nil {
		return err
	}

	images := post.Meta.Images
	if index < 0 || index >= len(images) {
		return fmt.Errorf("%w: album %s has no image %d", model.ErrOutOfRange, slug, index)
	}

	removeAssets(ctx, d.remover, slug, images[index])

	post.Meta.Images = slices.Delete(slices.Clone(images), index, index+1)
	if err := writeImages(d.writer, post); err != nil {
		return err
	}

	d.notify(ctx, entity.ActionImageDeleted, slug)

	return nil
}

type ImageReorderer struct {
	retriever album.Retriever
	writer    album.Writer
	notifier
}

func NewImageReorderer(retriever album.Retriever, writer album.Writer, publisher broker.Publisher) *ImageReorderer {
	return &ImageReorderer{
		retriever: retriever,
		writer:    writer,
		notifier:  notifier{publisher: publisher},
	}
}

// ReorderImages rebuilds the image list as images[order[0]], images[order[1]], ...
// order must be a permutation of the current positions.
func (r *ImageReorderer) ReorderImages(ctx context.Context, slug string, order []int) error {
	post, err := loadAlbum(r.retriever, slug)
	if err != nil {
		return err
	}

	images := post.Meta.Images
	if err := checkPermutation(order, len(images)); err != nil {
		return err
	}

	reordered := make([]model.Image, 0, len(order))
	for _, i := range order {
		reordered = append(reordered, images[i])
	}

	if err := r.writer.WriteDescriptor(slug, reordered); err != nil {
		return err
	}

	r.notify(ctx, entity.ActionImagesReordered, slug)

	return nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: order has %d entries, album has %d images", model.ErrBadRequest, len(order), n)
	}

	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: image index %d out of range", model.ErrBadRequest, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: image index %d repeated", model.ErrBadRequest, i)
		}
		seen[i] = true
	}

	return nil
}

// writeImages persists the descriptor, then the post so imageCount follows.
func writeImages(writer album.Writer, post *entity.Post) error {
	if err := writer.WriteDescriptor(post.Meta.Slug, post.Meta.Images); err != nil {
		return err
	}

	return writer.WritePost(post)
}
