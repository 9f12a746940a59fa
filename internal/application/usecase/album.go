package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
	"photoadmin/internal/domain/repository/storage"
)

// loadAlbum joins an album's post and descriptor. An album without both, or
// whose post has no readable front matter, does not exist.
func loadAlbum(retriever album.Retriever, slug string) (*entity.Post, error) {
	post, err := retriever.ReadPost(slug)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("unreadable album post", "slug", slug, "err", err)
		}

		return nil, fmt.Errorf("album %s: %w", slug, model.ErrNotFound)
	}

	images, err := retriever.ReadDescriptor(slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("album %s: %w", slug, model.ErrNotFound)
		}

		logger.Error("unreadable album descriptor", "slug", slug, "err", err)
		images = []model.Image{}
	}
	post.Meta.Images = images

	return post, nil
}

// removeAssets deletes an image's original and thumbnail. Failures are logged.
func removeAssets(ctx context.Context, remover storage.Remover, slug string, img model.Image) {
	for _, key := range []string{img.OriginalKey(), img.ThumbKey()} {
		if key == "" {
			continue
		}

		if err := remover.Remove(ctx, key); err != nil {
			logger.Error("failed to remove image from storage", "slug", slug, "key", key, "err", err)
		}
	}
}

type notifier struct {
	publisher broker.Publisher
}

// notify publishes an album change event; failures never reach the caller.
func (n notifier) notify(ctx context.Context, action, slug string) {
	if n.publisher == nil {
		return
	}

	msg, err := json.Marshal(entity.AlbumEvent{
		Action: action,
		Slug:   slug,
		At:     time.Now().Unix(),
	})
	if err != nil {
		logger.Error("failed to encode album event", "err", err)

		return
	}

	if err := n.publisher.Publish(ctx, string(msg)); err != nil {
		logger.Warn("failed to publish album event", "action", action, "slug", slug, "err", err)
	}
}
