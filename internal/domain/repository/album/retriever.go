package album

import (
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

type Retriever interface {
	HasDescriptor(slug string) (bool, error)
	ReadPost(slug string) (*entity.Post, error)
	ReadDescriptor(slug string) ([]model.Image, error)
}
