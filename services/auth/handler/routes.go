package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cropsync/kiosk/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the kiosk service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes registers the service routes. All endpoints are public:
// kiosks authenticate through these routes, they do not arrive
// authenticated.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/login-by-card", h.authHandler.LoginByCard)
	authGroup.POST("/verify-token", h.authHandler.VerifyToken)

	userGroup := api.Group("/users")
	userGroup.GET("/:user_id", h.userHandler.GetUser)
}
