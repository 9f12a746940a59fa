package usecase

import (
	"context"
	"sort"

	"github.com/dezh-tech/immortal/pkg/logger"

	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/album"
)

type Lister struct {
	lister    album.Lister
	retriever album.Retriever
	orders    album.OrderStore
}

func NewLister(lister album.Lister, retriever album.Retriever, orders album.OrderStore) *Lister {
	return &Lister{
		lister:    lister,
		retriever: retriever,
		orders:    orders,
	}
}

// ListAlbums returns every readable album, manual order first. A broken
// album is skipped without failing the listing.
func (l *Lister) ListAlbums(_ context.Context) ([]model.Album, error) {
	slugs, err := l.lister.Slugs()
	if err != nil {
		return nil, err
	}

	albums := make([]model.Album, 0, len(slugs))
	for _, slug := range slugs {
		post, err := loadAlbum(l.retriever, slug)
		if err != nil {
			logger.Warn("skipping album", "slug", slug, "err", err)

			continue
		}

		albums = append(albums, post.Meta)
	}

	order, err := l.orders.GetOrder()
	if err != nil {
		logger.Error("failed to read album order", "err", err)
		order = nil
	}

	sortAlbums(albums, order)

	return albums, nil
}

func (l *Lister) GetAlbum(_ context.Context, slug string) (*model.Album, error) {
	post, err := loadAlbum(l.retriever, slug)
	if err != nil {
		return nil, err
	}

	return &post.Meta, nil
}

// sortAlbums puts slugs named in order first, in that order. The rest follow
// newest first, ties broken by slug.
func sortAlbums(albums []model.Album, order []string) {
	rank := make(map[string]int, len(order))
	for i, slug := range order {
		if _, seen := rank[slug]; !seen {
			rank[slug] = i
		}
	}

	sort.SliceStable(albums, func(i, j int) bool {
		ri, iok := rank[albums[i].Slug]
		rj, jok := rank[albums[j].Slug]

		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		case albums[i].Date != albums[j].Date:
			return albums[i].Date > albums[j].Date
		default:
			return albums[i].Slug < albums[j].Slug
		}
	})
}
