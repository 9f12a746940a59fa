package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
)

var accepted = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"image/tiff": {},
	"image/bmp":  {},
}

// Accepted reports whether mime is an image type the pipeline can process.
func Accepted(mime string) bool {
	_, ok := accepted[mime]

	return ok
}

type Processor struct{}

func New() *Processor {
	return &Processor{}
}

func (p *Processor) Inspect(data []byte) (entity.ImageInfo, error) {
	mime := mimetype.Detect(data).String()
	if !Accepted(mime) {
		return entity.ImageInfo{}, fmt.Errorf("%w: unsupported file type %s", model.ErrBadRequest, mime)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return entity.ImageInfo{}, fmt.Errorf("%w: unreadable %s image: %w", model.ErrBadRequest, mime, err)
	}

	return entity.ImageInfo{
		MimeType: mime,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// ToJPEG leaves JPEG input untouched and re-encodes everything else.
func (p *Processor) ToJPEG(data []byte, info entity.ImageInfo, quality int) ([]byte, error) {
	if info.IsJPEG() {
		return data, nil
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("%w: encode jpeg: %w", model.ErrUpstream, err)
	}

	return buf.Bytes(), nil
}

// Thumbnail scales down to maxWidth, keeping the aspect ratio, and encodes WebP.
func (p *Processor) Thumbnail(data []byte, maxWidth, quality int) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("%w: encode webp: %w", model.ErrUpstream, err)
	}

	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %w", model.ErrUpstream, err)
	}

	return img, nil
}
