package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"photoadmin/internal/presentation"
)

func newTestServer(token string) *echo.Echo {
	e := echo.New()
	e.Use(Token(token))
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.GET("/api/albums", func(c echo.Context) error { return c.JSON(http.StatusOK, []string{}) })

	return e
}

func TestToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		path   string
		header string
		status int
	}{
		{"disabled", "", "/api/albums", "", http.StatusOK},
		{"valid token", "s3cret", "/api/albums", "Bearer s3cret", http.StatusOK},
		{"wrong token", "s3cret", "/api/albums", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "s3cret", "/api/albums", "", http.StatusUnauthorized},
		{"wrong scheme", "s3cret", "/api/albums", "Basic s3cret", http.StatusUnauthorized},
		{"health is open", "s3cret", "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(presentation.AuthKey, tt.header)
			}
			rec := httptest.NewRecorder()

			newTestServer(tt.token).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.NotEmpty(t, rec.Header().Get(presentation.ReasonTag))
			}
		})
	}
}
