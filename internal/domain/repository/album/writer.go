package album

import (
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

type Writer interface {
	WriteDescriptor(slug string, images []model.Image) error
	WritePost(post *entity.Post) error
	// RenamePost moves the post to the filename for date. A missing source is not an error.
	RenamePost(post *entity.Post, date string) error
}
