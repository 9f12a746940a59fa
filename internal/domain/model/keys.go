package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var storedIndex = regexp.MustCompile(`img(\d+)\.[a-z]+$`)

// ImageKey is the object key of the full-size image at index.
func ImageKey(slug string, index int) string {
	return fmt.Sprintf("%s/img%03d.jpg", slug, index)
}

// ThumbKey is the object key of the thumbnail at index.
func ThumbKey(slug string, index int) string {
	return fmt.Sprintf("%s/thumb/img%03d.webp", slug, index)
}

// KeyFromURL returns the last n path segments of rawURL joined by "/".
func KeyFromURL(rawURL string, n int) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}

	segments := strings.Split(strings.Trim(p, "/"), "/")
	if len(segments) > n {
		segments = segments[len(segments)-n:]
	}

	return strings.Join(segments, "/")
}

// OriginalKey recovers the object key of an image's full-size asset.
func (i Image) OriginalKey() string { return KeyFromURL(i.URL, 2) }

// ThumbKey recovers the object key of an image's thumbnail.
func (i Image) ThumbKey() string { return KeyFromURL(i.Thumb, 3) }

// StoredIndex parses the NNN of imgNNN from the image URL.
func (i Image) StoredIndex() (int, bool) {
	m := storedIndex.FindStringSubmatch(i.URL)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return n, true
}

// NextImageIndex is the first imgNNN number that does not collide with a
// stored image of the album.
func NextImageIndex(images []Image) int {
	next := len(images)
	for _, img := range images {
		if n, ok := img.StoredIndex(); ok && n+1 > next {
			next = n + 1
		}
	}

	return next
}
