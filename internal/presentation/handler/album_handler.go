package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"photoadmin/internal/application/usecase/abstraction"
	"photoadmin/internal/domain/dto"
	"photoadmin/internal/presentation"
)

type AlbumHandler struct {
	lister  abstraction.Lister
	creator abstraction.Creator
	updater abstraction.Updater
	deleter abstraction.Deleter
}

func NewAlbumHandler(lister abstraction.Lister, creator abstraction.Creator, updater abstraction.Updater,
	deleter abstraction.Deleter,
) *AlbumHandler {
	return &AlbumHandler{
		lister:  lister,
		creator: creator,
		updater: updater,
		deleter: deleter,
	}
}

// HandleList handles GET /api/albums requests.
func (h *AlbumHandler) HandleList(c echo.Context) error {
	albums, err := h.lister.ListAlbums(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAlbumViews(albums))
}

// HandleGet handles GET /api/albums/:slug requests.
func (h *AlbumHandler) HandleGet(c echo.Context) error {
	album, err := h.lister.GetAlbum(c.Request().Context(), c.Param(presentation.SlugParam))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAlbumView(album))
}

// HandleCreate handles multipart POST /api/albums requests.
func (h *AlbumHandler) HandleCreate(c echo.Context) error {
	files, err := readUploads(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	req := dto.CreateAlbumRequest{
		Title:       c.FormValue("title"),
		Developer:   c.FormValue("developer"),
		Description: c.FormValue("description"),
		Date:        c.FormValue("date"),
		Tags:        dto.SplitTags(c.FormValue("tags")),
		Files:       files,
	}
	if strings.TrimSpace(req.Title) == "" {
		return badRequest(c, "title is required")
	}

	album, err := h.creator.CreateAlbum(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AlbumResponse{
		Response: dto.Response{Success: true, Message: "Album created"},
		Album:    dto.NewAlbumView(album),
	})
}

// HandleUpdate handles PATCH /api/albums/:slug requests with a partial JSON body.
func (h *AlbumHandler) HandleUpdate(c echo.Context) error {
	var patch dto.AlbumPatch
	if err := decodeJSON(c, &patch); err != nil {
		return badRequest(c, "invalid album fields")
	}

	album, err := h.updater.UpdateAlbumMetadata(c.Request().Context(), c.Param(presentation.SlugParam), patch)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.AlbumResponse{
		Response: dto.Response{Success: true, Message: "Album updated"},
		Album:    dto.NewAlbumView(album),
	})
}

// HandleDelete handles DELETE /api/albums/:slug requests.
func (h *AlbumHandler) HandleDelete(c echo.Context) error {
	if err := h.deleter.DeleteAlbum(c.Request().Context(), c.Param(presentation.SlugParam)); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Album deleted"})
}
