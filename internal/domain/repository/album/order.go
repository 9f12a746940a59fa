package album

// OrderStore persists the manual album display order.
type OrderStore interface {
	GetOrder() ([]string, error)
	SaveOrder(slugs []string) error
}
