package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/presentation"
)

// readUploads buffers the files posted under "images" or "images[]" in
// submission order. The form only keeps order per field, so mixing both
// names is rejected.
func readUploads(c echo.Context) ([]dto.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("expected a multipart form: %w", err)
	}

	headers := form.File[presentation.ImagesField]
	if listed := form.File[presentation.ImagesField+"[]"]; len(listed) > 0 {
		if len(headers) > 0 {
			return nil, fmt.Errorf("send files under %q or %q, not both",
				presentation.ImagesField, presentation.ImagesField+"[]")
		}
		headers = listed
	}

	files := make([]dto.UploadFile, 0, len(headers))

	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
		}

		files = append(files, dto.UploadFile{Name: fh.Filename, Data: data})
	}

	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
