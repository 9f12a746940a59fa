package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"photoadmin/internal/domain/dto"
	"photoadmin/internal/presentation"
)

// Token guards the API with a static bearer token. An empty token disables it.
func Token(token string) echo.MiddlewareFunc {
	if token == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		KeyLookup:  "header:" + presentation.AuthKey,
		AuthScheme: presentation.BearerScheme,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			c.Response().Header().Set(presentation.ReasonTag, "invalid or missing bearer token")

			return c.JSON(http.StatusUnauthorized, dto.Response{Success: false, Message: "unauthorized"})
		},
	})
}
