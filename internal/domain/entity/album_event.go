package entity

const (
	ActionAlbumCreated    = "album.created"
	ActionAlbumUpdated    = "album.updated"
	ActionAlbumDeleted    = "album.deleted"
	ActionImagesAdded     = "album.images_added"
	ActionImageDeleted    = "album.image_deleted"
	ActionImagesReordered = "album.images_reordered"
	ActionOrderSaved      = "albums.order_saved"
)

type AlbumEvent struct {
	Action string `json:"action"`
	Slug   string `json:"slug,omitempty"`
	At     int64  `json:"at"`
}
