package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleGetOrder(t *testing.T) {
	e, m := newTestServer()
	m.orderer.On("GetOrder", mock.Anything).Return([]string{"b", "a"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["b","a"]`, rec.Body.String())
}

func TestHandleSaveOrder(t *testing.T) {
	e, m := newTestServer()
	m.orderer.On("SaveOrder", mock.Anything, []string{"b", "a"}).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/order", strings.NewReader(`["b", null, "a"]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	m.orderer.AssertExpectations(t)
}

func TestHandleSaveOrderRejectsNonArray(t *testing.T) {
	e, m := newTestServer()

	for _, body := range []string{`{"order":["a"]}`, `"a,b"`, `[1, 2]`} {
		req := httptest.NewRequest(http.MethodPut, "/api/order", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	m.orderer.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestHandleSaveOrderFailure(t *testing.T) {
	e, m := newTestServer()
	m.orderer.On("SaveOrder", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	req := httptest.NewRequest(http.MethodPut, "/api/order", strings.NewReader(`["a"]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full")
}
