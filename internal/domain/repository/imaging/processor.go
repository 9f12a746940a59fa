package imaging

import "photoadmin/internal/domain/entity"

type Processor interface {
	Inspect(data []byte) (entity.ImageInfo, error)
	ToJPEG(data []byte, info entity.ImageInfo, quality int) ([]byte, error)
	Thumbnail(data []byte, maxWidth, quality int) ([]byte, error)
}
