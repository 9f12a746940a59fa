package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Albums *AlbumHandler
	Images *ImageHandler
	Order  *OrderHandler
}

// Register mounts the admin API on e. mw applies to the /api group only.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api", mw...)

	api.GET("/albums", h.Albums.HandleList)
	api.POST("/albums", h.Albums.HandleCreate)
	api.GET("/albums/:slug", h.Albums.HandleGet)
	api.PATCH("/albums/:slug", h.Albums.HandleUpdate)
	api.DELETE("/albums/:slug", h.Albums.HandleDelete)

	api.POST("/albums/:slug/images", h.Images.HandleAdd)
	api.PUT("/albums/:slug/images/order", h.Images.HandleReorder)
	api.DELETE("/albums/:slug/images/:index", h.Images.HandleDelete)

	api.GET("/order", h.Order.HandleGet)
	api.PUT("/order", h.Order.HandleSave)
}
