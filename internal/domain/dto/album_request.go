package dto

import (
	"encoding/json"
	"errors"
	"strings"
)

type CreateAlbumRequest struct {
	Title       string
	Developer   string
	Description string
	Date        string
	Tags        []string
	Files       []UploadFile
}

// AlbumPatch carries a partial metadata update; nil fields keep their value.
type AlbumPatch struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Developer     *string `json:"developer"`
	Date          *string `json:"date"`
	Tags          *Tags   `json:"tags"`
	CardImage     *int    `json:"cardImage"`
	CardOffset    *int    `json:"cardOffset"`
	CardOffsetX   *int    `json:"cardOffsetX"`
	CardZoom      *int    `json:"cardZoom"`
	BannerImage   *int    `json:"bannerImage"`
	BannerOffset  *int    `json:"bannerOffset"`
	BannerOffsetX *int    `json:"bannerOffsetX"`
	BannerZoom    *int    `json:"bannerZoom"`
}

// Tags accepts either a JSON array of strings, used verbatim, or a
// comma-separated string.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}

	*t = SplitTags(s)

	return nil
}

// SplitTags splits s on commas, trimming every tag and dropping empty ones.
func SplitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

type ReorderRequest struct {
	Order []int `json:"order"`
}
