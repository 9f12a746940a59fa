package usecase

import (
	"context"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
	"photoadmin/internal/domain/repository/storage"
)

// Deleter implements the Deleter abstraction for removing whole albums.
type Deleter struct {
	retriever    album.Retriever
	albumRemover album.Remover
	remover      storage.Remover
	notifier
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(retriever album.Retriever, albumRemover album.Remover, remover storage.Remover,
	publisher broker.Publisher,
) *Deleter {
	return &Deleter{
		retriever:    retriever,
		albumRemover: albumRemover,
		remover:      remover,
		notifier:     notifier{publisher: publisher},
	}
}

// DeleteAlbum removes every remote asset best-effort, then the local files.
func (d *Deleter) DeleteAlbum(ctx context.Context, slug string) error {
	post, err := loadAlbum(d.retriever, slug)
	if err != nil {
		return err
	}

	for _, img := range post.Meta.Images {
		removeAssets(ctx, d.remover, slug, img)
	}

	if err := d.albumRemover.RemoveAlbum(slug); err != nil {
		return err
	}

	d.notify(ctx, entity.ActionAlbumDeleted, slug)

	return nil
}
