package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
)

type Creator struct {
	retriever album.Retriever
	writer    album.Writer
	pipeline  *Pipeline
	notifier
	now func() time.Time
}

func NewCreator(retriever album.Retriever, writer album.Writer, pipeline *Pipeline, publisher broker.Publisher,
) *Creator {
	return &Creator{
		retriever: retriever,
		writer:    writer,
		pipeline:  pipeline,
		notifier:  notifier{publisher: publisher},
		now:       time.Now,
	}
}

// CreateAlbum uploads every file before anything is written locally, so a
// failed upload leaves no album behind.
func (c *Creator) CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (*model.Album, error) {
	title := strings.TrimSpace(req.Title)
	slug := model.Slugify(title)
	if slug == "" {
		return nil, fmt.Errorf("%w: title must contain letters or digits", model.ErrBadRequest)
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = c.now().Format(model.DateLayout)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	exists, err := c.retriever.HasDescriptor(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: album %s already exists", model.ErrConflict, slug)
	}

	images, err := c.pipeline.Process(ctx, slug, 0, req.Files)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = model.DefaultDescription
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &entity.Post{Meta: model.Album{
		Slug:        slug,
		Title:       title,
		Description: description,
		Developer:   strings.TrimSpace(req.Developer),
		Date:        date,
		Tags:        tags,
		Layout:      model.DefaultLayout(),
		Images:      images,
	}}

	if err := c.writer.WriteDescriptor(slug, images); err != nil {
		return nil, err
	}

	if err := c.writer.WritePost(post); err != nil {
		return nil, err
	}

	c.notify(ctx, entity.ActionAlbumCreated, slug)

	return &post.Meta, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", model.ErrBadRequest, date)
	}

	return nil
}
