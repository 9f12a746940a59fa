package dto

import "photoadmin/internal/domain/model"

type AlbumView struct {
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Developer      string        `json:"developer"`
	Date           string        `json:"date"`
	Tags           []string      `json:"tags"`
	CardImage      int           `json:"cardImage"`
	CardOffset     int           `json:"cardOffset"`
	CardOffsetX    int           `json:"cardOffsetX"`
	CardZoom       int           `json:"cardZoom"`
	BannerImage    int           `json:"bannerImage"`
	BannerOffset   int           `json:"bannerOffset"`
	BannerOffsetX  int           `json:"bannerOffsetX"`
	BannerZoom     int           `json:"bannerZoom"`
	ImageCount     int           `json:"imageCount"`
	Images         []model.Image `json:"images"`
	MarkdownFile   string        `json:"markdownFile"`
	DescriptorFile string        `json:"jsonFile"`
}

func NewAlbumView(a *model.Album) AlbumView {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	images := a.Images
	if images == nil {
		images = []model.Image{}
	}

	return AlbumView{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Developer:      a.Developer,
		Date:           a.Date,
		Tags:           tags,
		CardImage:      a.Layout.CardImage,
		CardOffset:     a.Layout.CardOffset,
		CardOffsetX:    a.Layout.CardOffsetX,
		CardZoom:       a.Layout.CardZoom,
		BannerImage:    a.Layout.BannerImage,
		BannerOffset:   a.Layout.BannerOffset,
		BannerOffsetX:  a.Layout.BannerOffsetX,
		BannerZoom:     a.Layout.BannerZoom,
		ImageCount:     a.ImageCount(),
		Images:         images,
		MarkdownFile:   a.PostFile,
		DescriptorFile: a.DescriptorFile,
	}
}

func NewAlbumViews(albums []model.Album) []AlbumView {
	views := make([]AlbumView, 0, len(albums))
	for i := range albums {
		views = append(views, NewAlbumView(&albums[i]))
	}

	return views
}
