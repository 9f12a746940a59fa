package usecase

import (
	"context"
	"strings"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
)

type Updater struct {
	retriever album.Retriever
	writer    album.Writer
	notifier
}

func NewUpdater(retriever album.Retriever, writer album.Writer, publisher broker.Publisher) *Updater {
	return &Updater{
		retriever: retriever,
		writer:    writer,
		notifier:  notifier{publisher: publisher},
	}
}

// UpdateAlbumMetadata merges patch over the stored metadata. The slug never
// changes; a new date moves the post to its new filename first.
func (u *Updater) UpdateAlbumMetadata(ctx context.Context, slug string, patch dto.AlbumPatch) (*model.Album, error) {
	post, err := loadAlbum(u.retriever, slug)
	if err != nil {
		return nil, err
	}

	meta := &post.Meta
	setString(&meta.Title, patch.Title)
	setString(&meta.Description, patch.Description)
	setString(&meta.Developer, patch.Developer)

	if patch.Tags != nil {
		meta.Tags = []string(*patch.Tags)
		if meta.Tags == nil {
			meta.Tags = []string{}
		}
	}

	setInt(&meta.Layout.CardImage, patch.CardImage)
	setInt(&meta.Layout.CardOffset, patch.CardOffset)
	setInt(&meta.Layout.CardOffsetX, patch.CardOffsetX)
	setInt(&meta.Layout.CardZoom, patch.CardZoom)
	setInt(&meta.Layout.BannerImage, patch.BannerImage)
	setInt(&meta.Layout.BannerOffset, patch.BannerOffset)
	setInt(&meta.Layout.BannerOffsetX, patch.BannerOffsetX)
	setInt(&meta.Layout.BannerZoom, patch.BannerZoom)

	if patch.Date != nil {
		date := strings.TrimSpace(*patch.Date)
		if err := validateDate(date); err != nil {
			return nil, err
		}

		if date != meta.Date {
			if err := u.writer.RenamePost(post, date); err != nil {
				return nil, err
			}
			meta.Date = date
		}
	}

	if err := u.writer.WritePost(post); err != nil {
		return nil, err
	}

	u.notify(ctx, entity.ActionAlbumUpdated, slug)

	return meta, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
