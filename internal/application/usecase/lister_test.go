package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoadmin/internal/domain/model"
)

func slugsOf(albums []model.Album) []string {
	slugs := make([]string, 0, len(albums))
	for _, a := range albums {
		slugs = append(slugs, a.Slug)
	}

	return slugs
}

func TestListAlbumsManualOrder(t *testing.T) {
	h := newHarness(t)
	h.seed(t, "a", "2020-01-01", 0)
	h.seed(t, "b", "2019-01-01", 0)
	require.NoError(t, h.orders.SaveOrder([]string{"b", "a"}))

	albums, err := h.lister().ListAlbums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, slugsOf(albums))
}

func TestListAlbumsByDate(t *testing.T) {
	h := newHarness(t)
	h.seed(t, "old", "2018-06-01", 0)
	h.seed(t, "new", "2024-01-01", 0)
	h.seed(t, "mid", "2021-03-03", 0)

	albums, err := h.lister().ListAlbums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, slugsOf(albums))
}

func TestListAlbumsPartialOrder(t *testing.T) {
	h := newHarness(t)
	h.seed(t, "a", "2018-01-01", 0)
	h.seed(t, "b", "2024-01-01", 0)
	h.seed(t, "c", "2022-01-01", 0)
	h.seed(t, "d", "2022-01-01", 0)
	require.NoError(t, h.orders.SaveOrder([]string{"gone", "a"}))

	albums, err := h.lister().ListAlbums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, slugsOf(albums))
}

func TestListAlbumsIsolatesBrokenAlbums(t *testing.T) {
	h := newHarness(t)
	h.seed(t, "good", "2020-01-01", 1)
	h.seed(t, "corrupt", "2021-01-01", 2)
	h.seed(t, "headless", "2022-01-01", 0)

	require.NoError(t, os.WriteFile(filepath.Join(h.cfg.AlbumsDir, "corrupt.json"), []byte("{broken"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(h.cfg.PostsDir, "2022-01-01-headless.md"), []byte("no front matter"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(h.cfg.AlbumsDir, "orphan.json"), []byte("[]"), 0o644))

	albums, err := h.lister().ListAlbums(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"corrupt", "good"}, slugsOf(albums))
	assert.Empty(t, albums[0].Images)
	assert.Equal(t, 1, albums[1].ImageCount())

	_, err = h.lister().GetAlbum(context.Background(), "headless")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = h.lister().GetAlbum(context.Background(), "orphan")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSortAlbumsDuplicateOrderEntries(t *testing.T) {
	albums := []model.Album{{Slug: "x", Date: "2020-01-01"}, {Slug: "y", Date: "2021-01-01"}}
	sortAlbums(albums, []string{"x", "y", "x"})
	assert.Equal(t, []string{"x", "y"}, slugsOf(albums))
}
