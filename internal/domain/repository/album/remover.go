package album

type Remover interface {
	RemoveAlbum(slug string) error
}
