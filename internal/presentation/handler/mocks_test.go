package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

type mockLister struct{ mock.Mock }

func (m *mockLister) ListAlbums(ctx context.Context) ([]model.Album, error) {
	args := m.Called(ctx)
	albums, _ := args.Get(0).([]model.Album)

	return albums, args.Error(1)
}

func (m *mockLister) GetAlbum(ctx context.Context, slug string) (*model.Album, error) {
	args := m.Called(ctx, slug)
	album, _ := args.Get(0).(*model.Album)

	return album, args.Error(1)
}

type mockCreator struct{ mock.Mock }

func (m *mockCreator) CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (*model.Album, error) {
	args := m.Called(ctx, req)
	album, _ := args.Get(0).(*model.Album)

	return album, args.Error(1)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) UpdateAlbumMetadata(ctx context.Context, slug string, patch dto.AlbumPatch,
) (*model.Album, error) {
	args := m.Called(ctx, slug, patch)
	album, _ := args.Get(0).(*model.Album)

	return album, args.Error(1)
}

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) DeleteAlbum(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

type mockImageAdder struct{ mock.Mock }

func (m *mockImageAdder) AddImages(ctx context.Context, slug string, files []dto.UploadFile,
) (entity.AddImagesResult, error) {
	args := m.Called(ctx, slug, files)
	result, _ := args.Get(0).(entity.AddImagesResult)

	return result, args.Error(1)
}

type mockImageDeleter struct{ mock.Mock }

func (m *mockImageDeleter) DeleteImage(ctx context.Context, slug string, index int) error {
	return m.Called(ctx, slug, index).Error(0)
}

type mockReorderer struct{ mock.Mock }

func (m *mockReorderer) ReorderImages(ctx context.Context, slug string, order []int) error {
	return m.Called(ctx, slug, order).Error(0)
}

type mockOrderer struct{ mock.Mock }

func (m *mockOrderer) GetOrder(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	order, _ := args.Get(0).([]string)

	return order, args.Error(1)
}

func (m *mockOrderer) SaveOrder(ctx context.Context, slugs []string) error {
	return m.Called(ctx, slugs).Error(0)
}

type mocks struct {
	lister       *mockLister
	creator      *mockCreator
	updater      *mockUpdater
	deleter      *mockDeleter
	adder        *mockImageAdder
	imageDeleter *mockImageDeleter
	reorderer    *mockReorderer
	orderer      *mockOrderer
}

func newTestServer() (*echo.Echo, *mocks) {
	m := &mocks{
		lister:       &mockLister{},
		creator:      &mockCreator{},
		updater:      &mockUpdater{},
		deleter:      &mockDeleter{},
		adder:        &mockImageAdder{},
		imageDeleter: &mockImageDeleter{},
		reorderer:    &mockReorderer{},
		orderer:      &mockOrderer{},
	}

	e := echo.New()
	Register(e, Handlers{
		Albums: NewAlbumHandler(m.lister, m.creator, m.updater, m.deleter),
		Images: NewImageHandler(m.adder, m.imageDeleter, m.reorderer),
		Order:  NewOrderHandler(m.orderer),
	})

	return e, m
}
