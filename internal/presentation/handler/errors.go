package handler

import (
	"errors"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/presentation"
)

// statusFor maps a use case error to a status and the message shown to the operator.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrOutOfRange):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, model.ErrUpstream):
		return http.StatusInternalServerError, "remote storage or image processing failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func fail(c echo.Context, err error) error {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
	}

	c.Response().Header().Set(presentation.ReasonTag, msg)

	return c.JSON(status, dto.Response{Success: false, Message: msg})
}

func badRequest(c echo.Context, msg string) error {
	c.Response().Header().Set(presentation.ReasonTag, msg)

	return c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: msg})
}

func decodeJSON(c echo.Context, v any) error {
	return c.Echo().JSONSerializer.Deserialize(c, v)
}
