package usecase

import (
	"context"
	"strings"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/repository/album"
	"photoadmin/internal/domain/repository/broker"
)

type Orderer struct {
	orders album.OrderStore
	notifier
}

func NewOrderer(orders album.OrderStore, publisher broker.Publisher) *Orderer {
	return &Orderer{
		orders:   orders,
		notifier: notifier{publisher: publisher},
	}
}

func (o *Orderer) GetOrder(_ context.Context) ([]string, error) {
	return o.orders.GetOrder()
}

// SaveOrder overwrites the manual order. Unknown slugs are kept; blank ones
// are dropped.
func (o *Orderer) SaveOrder(ctx context.Context, slugs []string) error {
	cleaned := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if strings.TrimSpace(slug) != "" {
			cleaned = append(cleaned, slug)
		}
	}

	if err := o.orders.SaveOrder(cleaned); err != nil {
		return err
	}

	o.notify(ctx, entity.ActionOrderSaved, "")

	return nil
}
