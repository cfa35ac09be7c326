package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func performRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "CropSync Kiosk API", &stubChecker{})

	rec := performRequest(e, "/")

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "CropSync Kiosk API is running", response["message"])
}

func TestHealthEndpoint_Healthy(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "CropSync Kiosk API", &stubChecker{})

	rec := performRequest(e, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "connected", response.Database)
	assert.Empty(t, response.Error)
}

func TestHealthEndpoint_Degraded(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "CropSync Kiosk API", &stubChecker{err: errors.New("dial tcp: connection refused")})

	rec := performRequest(e, "/api/health")

	// Degraded is still HTTP 200 with status detail in the body
	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "disconnected", response.Database)
	assert.Contains(t, response.Error, "connection refused")
}
