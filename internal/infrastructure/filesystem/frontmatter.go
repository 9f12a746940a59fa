package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

var (
	ErrNoFrontMatter = errors.New("post has no front matter block")

	frontMatterBlock = regexp.MustCompile(`(?s)\A\x{FEFF}?---[ \t]*\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|\z)(.*)\z`)
)

// frontMatter is the on-disk shape of a post header. Pointer fields tell an
// absent key apart from a zero value so defaults can be applied.
type frontMatter struct {
	Layout        string  `yaml:"layout"`
	Title         string  `yaml:"title"`
	Date          string  `yaml:"date"`
	Description   *string `yaml:"description"`
	Developer     string  `yaml:"developer"`
	Tags          tagList `yaml:"tags"`
	Album         string  `yaml:"album"`
	ImageCount    int     `yaml:"imageCount"`
	CardImage     *int    `yaml:"cardImage"`
	CardOffset    *int    `yaml:"cardOffset"`
	CardOffsetX   *int    `yaml:"cardOffsetX"`
	CardZoom      *int    `yaml:"cardZoom"`
	BannerImage   *int    `yaml:"bannerImage"`
	BannerOffset  *int    `yaml:"bannerOffset"`
	BannerOffsetX *int    `yaml:"bannerOffsetX"`
	BannerZoom    *int    `yaml:"bannerZoom"`
}

const postLayout = "album"

// tagList reads either a YAML sequence or a comma-separated scalar and is
// written back as a flow sequence.
type tagList []string

func (t *tagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var tags []string
		if err := node.Decode(&tags); err != nil {
			return err
		}
		*t = tags
	case yaml.ScalarNode:
		tags := []string{}
		for _, part := range strings.Split(node.Value, ",") {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
	default:
		return fmt.Errorf("line %d: tags must be a list or a string", node.Line)
	}

	return nil
}

func (t tagList) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Tag: "!!seq"}
	for _, tag := range t {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tag})
	}

	return node, nil
}

// splitPost separates the front matter block from the body.
func splitPost(content []byte) (header, body []byte, err error) {
	m := frontMatterBlock.FindSubmatch(content)
	if m == nil {
		return nil, nil, ErrNoFrontMatter
	}

	return m[1], m[2], nil
}

// decodePost parses a post file. The raw header stays on the post so a
// rewrite only touches the keys this service manages.
func decodePost(slug string, content []byte) (*entity.Post, error) {
	header, body, err := splitPost(content)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}

	return &entity.Post{
		Layout: fm.Layout,
		Meta:   fm.album(slug),
		Body:   string(body),
		Header: header,
	}, nil
}

func (fm *frontMatter) album(slug string) model.Album {
	layout := model.DefaultLayout()
	setInt(&layout.CardImage, fm.CardImage)
	setInt(&layout.CardOffset, fm.CardOffset)
	setInt(&layout.CardOffsetX, fm.CardOffsetX)
	setInt(&layout.CardZoom, fm.CardZoom)
	setInt(&layout.BannerImage, fm.BannerImage)
	setInt(&layout.BannerOffset, fm.BannerOffset)
	setInt(&layout.BannerOffsetX, fm.BannerOffsetX)
	setInt(&layout.BannerZoom, fm.BannerZoom)

	description := model.DefaultDescription
	if fm.Description != nil {
		description = *fm.Description
	}

	tags := []string(fm.Tags)
	if tags == nil {
		tags = []string{}
	}

	return model.Album{
		Slug:        slug,
		Title:       fm.Title,
		Description: description,
		Developer:   fm.Developer,
		Date:        trimDate(fm.Date),
		Tags:        tags,
		Layout:      layout,
	}
}

// trimDate keeps the day of a date or timestamp value.
func trimDate(date string) string {
	date = strings.TrimSpace(date)
	if len(date) > len(model.DateLayout) {
		date = date[:len(model.DateLayout)]
	}

	return date
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

type managedField struct {
	key   string
	value any
}

// managedFields lists the header keys owned by this service, in the order a
// new post is written.
func managedFields(post *entity.Post) []managedField {
	layout := post.Layout
	if layout == "" {
		layout = postLayout
	}

	a := &post.Meta
	l := a.Layout

	return []managedField{
		{"layout", layout},
		{"title", a.Title},
		{"date", a.Date},
		{"description", a.Description},
		{"developer", a.Developer},
		{"tags", tagList(a.Tags)},
		{"album", a.Slug},
		{"imageCount", len(a.Images)},
		{"cardImage", l.CardImage},
		{"cardOffset", l.CardOffset},
		{"cardOffsetX", l.CardOffsetX},
		{"cardZoom", l.CardZoom},
		{"bannerImage", l.BannerImage},
		{"bannerOffset", l.BannerOffset},
		{"bannerOffsetX", l.BannerOffsetX},
		{"bannerZoom", l.BannerZoom},
	}
}

// encodePost renders a post. A post read from disk keeps its header: keys this
// service does not manage are left alone, managed keys are only rewritten when
// their value changed, and absent keys are only added when they differ from
// what reading the post would assume.
func encodePost(post *entity.Post) ([]byte, error) {
	fields := managedFields(post)

	var (
		header []byte
		err    error
	)
	if len(bytes.TrimSpace(post.Header)) == 0 {
		header, err = freshHeader(fields)
	} else {
		header, err = mergeHeader(post.Header, post.Meta.Slug, fields)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.WriteString(post.Body)

	return buf.Bytes(), nil
}

func freshHeader(fields []managedField) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fields {
		value, err := valueNode(f.value)
		if err != nil {
			return nil, err
		}
		root.Content = append(root.Content, keyNode(f.key), value)
	}

	return encodeHeader(root)
}

func mergeHeader(raw []byte, slug string, fields []managedField) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}

	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNoFrontMatter
	}
	root := doc.Content[0]

	var empty frontMatter
	defaults := managedFields(&entity.Post{Meta: empty.album(slug)})

	changed := false
	for i, f := range fields {
		current := lookup(root, f.key)
		if current == nil {
			if sameValue(f.value, defaults[i].value) {
				continue
			}

			value, err := valueNode(f.value)
			if err != nil {
				return nil, err
			}
			root.Content = append(root.Content, keyNode(f.key), value)
			changed = true

			continue
		}

		same, err := holds(current, f, defaults[i])
		if err != nil {
			return nil, fmt.Errorf("front matter key %s: %w", f.key, err)
		}
		if same {
			continue
		}

		value, err := valueNode(f.value)
		if err != nil {
			return nil, err
		}
		value.HeadComment = current.HeadComment
		value.LineComment = current.LineComment
		value.FootComment = current.FootComment
		*current = *value
		changed = true
	}

	if !changed {
		header := bytes.TrimRight(raw, "\r\n")

		return append(slices.Clip(header), '\n'), nil
	}

	return encodeHeader(root)
}

// holds reports whether node already carries the value of f. A null value
// reads as the default.
func holds(node *yaml.Node, f, def managedField) (bool, error) {
	if node.ShortTag() == "!!null" {
		return sameValue(f.value, def.value), nil
	}

	current := reflect.New(reflect.TypeOf(f.value))
	if err := node.Decode(current.Interface()); err != nil {
		return false, err
	}

	value := current.Elem().Interface()
	if s, ok := value.(string); ok && f.key == "date" {
		value = trimDate(s)
	}

	return sameValue(value, f.value), nil
}

func sameValue(a, b any) bool {
	if ta, ok := a.(tagList); ok {
		tb, _ := b.(tagList)

		return slices.Equal(ta, tb)
	}

	return a == b
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func valueNode(v any) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}

	return &node, nil
}

func encodeHeader(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
