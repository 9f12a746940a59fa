package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photoadmin/internal/application/usecase/abstraction"
	"photoadmin/internal/domain/dto"
)

type OrderHandler struct {
	orderer abstraction.Orderer
}

func NewOrderHandler(orderer abstraction.Orderer) *OrderHandler {
	return &OrderHandler{
		orderer: orderer,
	}
}

// HandleGet handles GET /api/order requests.
func (h *OrderHandler) HandleGet(c echo.Context) error {
	order, err := h.orderer.GetOrder(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// HandleSave handles PUT /api/order requests carrying a JSON array of slugs.
func (h *OrderHandler) HandleSave(c echo.Context) error {
	var entries []*string
	if err := decodeJSON(c, &entries); err != nil {
		return badRequest(c, "order must be an array of slugs")
	}

	slugs := make([]string, 0, len(entries))
	for _, slug := range entries {
		if slug != nil {
			slugs = append(slugs, *slug)
		}
	}

	if err := h.orderer.SaveOrder(c.Request().Context(), slugs); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Album order saved"})
}
