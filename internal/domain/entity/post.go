package entity

import "photoadmin/internal/domain/model"

// Post is an album's Markdown file: front matter decoded into Meta, the body kept verbatim.
// Header holds the front matter as read, so keys outside Meta survive a rewrite.
type Post struct {
	Filename string
	Layout   string
	Meta     model.Album
	Body     string
	Header   []byte
}
