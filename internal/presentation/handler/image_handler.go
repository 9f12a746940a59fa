package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"photoadmin/internal/application/usecase/abstraction"
	"photoadmin/internal/domain/dto"
	"photoadmin/internal/presentation"
)

type ImageHandler struct {
	adder     abstraction.ImageAdder
	deleter   abstraction.ImageDeleter
	reorderer abstraction.ImageReorderer
}

func NewImageHandler(adder abstraction.ImageAdder, deleter abstraction.ImageDeleter,
	reorderer abstraction.ImageReorderer,
) *ImageHandler {
	return &ImageHandler{
		adder:     adder,
		deleter:   deleter,
		reorderer: reorderer,
	}
}

// HandleAdd handles multipart POST /api/albums/:slug/images requests.
func (h *ImageHandler) HandleAdd(c echo.Context) error {
	files, err := readUploads(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.adder.AddImages(c.Request().Context(), c.Param(presentation.SlugParam), files)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.AddImagesResponse{
		Response: dto.Response{
			Success: true,
			Message: fmt.Sprintf("Added %d images", result.AddedCount),
		},
		AddedCount:  result.AddedCount,
		TotalImages: result.TotalImages,
	})
}

// HandleDelete handles DELETE /api/albums/:slug/images/:index requests.
func (h *ImageHandler) HandleDelete(c echo.Context) error {
	index, err := strconv.Atoi(c.Param(presentation.IndexParam))
	if err != nil {
		return badRequest(c, "image index must be an integer")
	}

	if err := h.deleter.DeleteImage(c.Request().Context(), c.Param(presentation.SlugParam), index); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Image deleted"})
}

// HandleReorder handles PUT /api/albums/:slug/images/order requests.
func (h *ImageHandler) HandleReorder(c echo.Context) error {
	var req dto.ReorderRequest
	if err := decodeJSON(c, &req); err != nil {
		return badRequest(c, "order must be an array of integers")
	}

	if err := h.reorderer.ReorderImages(c.Request().Context(), c.Param(presentation.SlugParam), req.Order); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Images reordered"})
}
