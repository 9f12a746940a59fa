package album

// Lister enumerates the slugs that have a descriptor on disk.
type Lister interface {
	Slugs() ([]string, error)
}
