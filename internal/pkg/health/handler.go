package health

import (
	"context"
	"net/http"
	"time"

	"github.com/cropsync/kiosk/internal/pkg/database"
	"github.com/cropsync/kiosk/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// MySQLHealthChecker checks MySQL connectivity
type MySQLHealthChecker struct {
	client *database.MySQLClient
}

// NewMySQLHealthChecker creates a new MySQL health checker
func NewMySQLHealthChecker(client *database.MySQLClient) *MySQLHealthChecker {
	return &MySQLHealthChecker{client: client}
}

// CheckHealth runs a probe query through the connection pool
func (m *MySQLHealthChecker) CheckHealth(ctx context.Context) error {
	var one int
	return m.client.GetDB().GetContext(ctx, &one, "SELECT 1")
}

// HealthResponse is the /api/health payload. Degraded is still HTTP 200;
// kiosk frontends poll this endpoint and read the status field.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// RegisterHealthEndpoints registers the root status and health endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checker HealthChecker) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"message": serviceName + " is running",
		})
	})

	e.GET("/api/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed", logger.Err(err))
			return c.JSON(http.StatusOK, HealthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
				Error:    err.Error(),
			})
		}

		return c.JSON(http.StatusOK, HealthResponse{
			Status:   "healthy",
			Database: "connected",
		})
	})
}
