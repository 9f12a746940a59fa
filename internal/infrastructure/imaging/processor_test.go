package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"

	"photoadmin/internal/domain/model"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	p := New()

	info, err := p.Inspect(pngBytes(t, 40, 30))
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.MimeType)
	assert.Equal(t, 40, info.Width)
	assert.Equal(t, 30, info.Height)

	_, err = p.Inspect([]byte("definitely not an image"))
	assert.ErrorIs(t, err, model.ErrBadRequest)
}

func TestToJPEG(t *testing.T) {
	p := New()
	data := pngBytes(t, 64, 48)

	info, err := p.Inspect(data)
	require.NoError(t, err)

	out, err := p.ToJPEG(data, info, 95)
	require.NoError(t, err)

	jpegInfo, err := p.Inspect(out)
	require.NoError(t, err)
	assert.True(t, jpegInfo.IsJPEG())
	assert.Equal(t, 64, jpegInfo.Width)

	same, err := p.ToJPEG(out, jpegInfo, 95)
	require.NoError(t, err)
	assert.Equal(t, out, same)
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"scales down", 1200, 800, 600, 400},
		{"never upscales", 300, 200, 300, 200},
		{"exact width", 600, 900, 600, 900},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Thumbnail(pngBytes(t, tt.width, tt.height), 600, 85)
			require.NoError(t, err)

			cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, cfg.Width)
			assert.Equal(t, tt.wantHeight, cfg.Height)
		})
	}
}
