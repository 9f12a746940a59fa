package model

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	whitespace  = regexp.MustCompile(`\s+`)
	hyphens     = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases title, strips punctuation and joins words with hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = punctuation.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
