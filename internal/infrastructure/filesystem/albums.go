package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)

// AlbumFiles stores albums as {date}-{slug}.md posts plus {slug}.json descriptors.
type AlbumFiles struct {
	postsDir  string
	albumsDir string
	orderFile string
}

func NewAlbumFiles(cfg Config) (*AlbumFiles, error) {
	for _, dir := range []string{cfg.PostsDir, cfg.AlbumsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return &AlbumFiles{
		postsDir:  cfg.PostsDir,
		albumsDir: cfg.AlbumsDir,
		orderFile: cfg.OrderFile,
	}, nil
}

func (f *AlbumFiles) Slugs() ([]string, error) {
	entries, err := os.ReadDir(f.albumsDir)
	if err != nil {
		return nil, fmt.Errorf("reading albums directory: %w", err)
	}

	orderPath, _ := filepath.Abs(f.orderFile)

	var slugs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, ".") {
			continue
		}

		if p, err := filepath.Abs(filepath.Join(f.albumsDir, name)); err == nil && p == orderPath {
			continue
		}

		slugs = append(slugs, strings.TrimSuffix(name, ".json"))
	}

	sort.Strings(slugs)

	return slugs, nil
}

func (f *AlbumFiles) HasDescriptor(slug string) (bool, error) {
	_, err := os.Stat(f.descriptorPath(slug))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func (f *AlbumFiles) ReadDescriptor(slug string) ([]model.Image, error) {
	data, err := os.ReadFile(f.descriptorPath(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("descriptor for %s: %w", slug, model.ErrNotFound)
		}

		return nil, err
	}

	return decodeDescriptor(data)
}

// findPost returns the filename of the {date}-{slug}.md post for slug.
func (f *AlbumFiles) findPost(slug string) (string, error) {
	entries, err := os.ReadDir(f.postsDir)
	if err != nil {
		return "", fmt.Errorf("reading posts directory: %w", err)
	}

	suffix := "-" + slug + ".md"
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}

		prefix := strings.TrimSuffix(name, slug+".md")
		if len(prefix) == len("2006-01-02-") && datePrefix.MatchString(prefix) {
			return name, nil
		}
	}

	return "", fmt.Errorf("post for %s: %w", slug, model.ErrNotFound)
}

func (f *AlbumFiles) ReadPost(slug string) (*entity.Post, error) {
	name, err := f.findPost(slug)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(f.postsDir, name))
	if err != nil {
		return nil, err
	}

	post, err := decodePost(slug, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	post.Filename = name
	post.Meta.PostFile = name
	post.Meta.DescriptorFile = model.DescriptorFilename(slug)

	return post, nil
}

func (f *AlbumFiles) WriteDescriptor(slug string, images []model.Image) error {
	data, err := encodeDescriptor(images)
	if err != nil {
		return err
	}

	return writeFileAtomic(f.descriptorPath(slug), data)
}

func (f *AlbumFiles) WritePost(post *entity.Post) error {
	if post.Filename == "" {
		post.Filename = model.PostFilename(post.Meta.Date, post.Meta.Slug)
	}

	data, err := encodePost(post)
	if err != nil {
		return err
	}

	if header, _, err := splitPost(data); err == nil {
		post.Header = header
	}

	post.Meta.PostFile = post.Filename
	post.Meta.DescriptorFile = model.DescriptorFilename(post.Meta.Slug)

	return writeFileAtomic(filepath.Join(f.postsDir, post.Filename), data)
}

func (f *AlbumFiles) RenamePost(post *entity.Post, date string) error {
	target := model.PostFilename(date, post.Meta.Slug)
	if post.Filename == target {
		return nil
	}

	from := filepath.Join(f.postsDir, post.Filename)
	if _, err := os.Stat(from); errors.Is(err, fs.ErrNotExist) {
		post.Filename = target

		return nil
	}

	if err := os.Rename(from, filepath.Join(f.postsDir, target)); err != nil {
		return fmt.Errorf("renaming %s: %w", post.Filename, err)
	}
	post.Filename = target

	return nil
}

func (f *AlbumFiles) RemoveAlbum(slug string) error {
	if name, err := f.findPost(slug); err == nil {
		if err := removeIfExists(filepath.Join(f.postsDir, name)); err != nil {
			return err
		}
	}

	return removeIfExists(f.descriptorPath(slug))
}

func (f *AlbumFiles) descriptorPath(slug string) string {
	return filepath.Join(f.albumsDir, model.DescriptorFilename(slug))
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	return nil
}
