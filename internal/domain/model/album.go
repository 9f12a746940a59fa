package model

import (
	"fmt"
	"math"
)

const (
	DefaultDescription = "No description provided."
	DefaultOffset      = 50
	DefaultZoom        = 100
	DefaultAspectRatio = 1.5

	DateLayout = "2006-01-02"
)

type Image struct {
	URL         string  `json:"url"`
	Thumb       string  `json:"thumb"`
	AspectRatio float64 `json:"aspectRatio"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

// Layout holds the crop/zoom hints the site uses for card and banner display.
type Layout struct {
	CardImage     int `json:"cardImage"`
	CardOffset    int `json:"cardOffset"`
	CardOffsetX   int `json:"cardOffsetX"`
	CardZoom      int `json:"cardZoom"`
	BannerImage   int `json:"bannerImage"`
	BannerOffset  int `json:"bannerOffset"`
	BannerOffsetX int `json:"bannerOffsetX"`
	BannerZoom    int `json:"bannerZoom"`
}

func DefaultLayout() Layout {
	return Layout{
		CardOffset:    DefaultOffset,
		CardOffsetX:   DefaultOffset,
		CardZoom:      DefaultZoom,
		BannerOffset:  DefaultOffset,
		BannerOffsetX: DefaultOffset,
		BannerZoom:    DefaultZoom,
	}
}

type Album struct {
	Slug        string
	Title       string
	Description string
	Developer   string
	Date        string
	Tags        []string
	Layout      Layout
	Images      []Image

	PostFile       string
	DescriptorFile string
}

func (a *Album) ImageCount() int { return len(a.Images) }

// PostFilename is the name of the Markdown post for an album dated date.
func PostFilename(date, slug string) string {
	return fmt.Sprintf("%s-%s.md", date, slug)
}

func DescriptorFilename(slug string) string {
	return slug + ".json"
}

// AspectRatio returns width/height rounded to four decimals.
func AspectRatio(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return DefaultAspectRatio
	}

	return math.Round(float64(width)/float64(height)*10000) / 10000
}
