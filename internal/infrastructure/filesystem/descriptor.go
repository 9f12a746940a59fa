package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"photoadmin/internal/domain/model"
)

// imageRecord reads both the current descriptor keys and the legacy
// imageFull-link / thumbnail-link / aspect-ratio keys.
type imageRecord struct {
	URL         *string `json:"url"`
	Thumb       *string `json:"thumb"`
	AspectRatio *number `json:"aspectRatio"`
	Width       *number `json:"width"`
	Height      *number `json:"height"`
	LegacyURL   *string `json:"imageFull-link"`
	LegacyThumb *string `json:"thumbnail-link"`
	LegacyRatio *number `json:"aspect-ratio"`
}

// number accepts a JSON number or a numeric string.
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		data = []byte(s)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", data)
	}
	*n = number(f)

	return nil
}

func (r *imageRecord) image() model.Image {
	img := model.Image{
		URL:         firstString(r.URL, r.LegacyURL),
		Thumb:       firstString(r.Thumb, r.LegacyThumb),
		AspectRatio: model.DefaultAspectRatio,
	}

	switch {
	case r.AspectRatio != nil && *r.AspectRatio > 0:
		img.AspectRatio = float64(*r.AspectRatio)
	case r.LegacyRatio != nil && *r.LegacyRatio > 0:
		img.AspectRatio = float64(*r.LegacyRatio)
	}

	if r.Width != nil {
		img.Width = int(*r.Width)
	}
	if r.Height != nil {
		img.Height = int(*r.Height)
	}

	return img
}

func firstString(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}

	return ""
}

func decodeDescriptor(data []byte) ([]model.Image, error) {
	var records []*imageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding descriptor: %w", err)
	}

	images := make([]model.Image, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		images = append(images, r.image())
	}

	return images, nil
}

func encodeDescriptor(images []model.Image) ([]byte, error) {
	if images == nil {
		images = []model.Image{}
	}

	data, err := json.MarshalIndent(images, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
