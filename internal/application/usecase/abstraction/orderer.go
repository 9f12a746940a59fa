package abstraction

import "context"

type Orderer interface {
	GetOrder(ctx context.Context) ([]string, error)
	SaveOrder(ctx context.Context, slugs []string) error
}
