package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/validators"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func render(t *testing.T, cfg *Config, log *zap.Logger, err error) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/notices", nil), rec)

	NewHTTPErrorHandler(cfg, log)(err, c)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandlerHTTPError(t *testing.T) {
	code, body := render(t, &Config{Env: "production"}, zap.NewNop(),
		echo.NewHTTPError(http.StatusConflict, "This notice has already added to user's favorite notices"))

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "This notice has already added to user's favorite notices", body["message"])
	assert.NotContains(t, body, "error")
}

func TestErrorHandlerValidationError(t *testing.T) {
	verr := &validators.ValidationError{Fields: []validators.FieldError{{Field: "category", Message: "bad"}}}
	code, body := render(t, &Config{Env: "production"}, zap.NewNop(), verr)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad request (invalid request body)", body["message"])
	assert.Len(t, body["errors"], 1)
}

func TestErrorHandlerHidesInternalsOutsideDevelopment(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	cause := errors.New("connection reset")
	err := echo.NewHTTPError(http.StatusInternalServerError, "Server error").SetInternal(cause)

	code, body := render(t, &Config{Env: "production"}, zap.New(core), err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body, "error")
	assert.Equal(t, 1, logs.Len())

	_, body = render(t, &Config{Env: "development"}, zap.NewNop(), err)
	assert.Equal(t, "connection reset", body["error"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	code, body := render(t, &Config{Env: "production"}, zap.NewNop(), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Server error", body["message"])
}
