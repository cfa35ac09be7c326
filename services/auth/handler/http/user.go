package http

import (
	"errors"
	"net/http"

	"github.com/cropsync/kiosk/internal/pkg/logger"
	"github.com/cropsync/kiosk/internal/utils"
	"github.com/cropsync/kiosk/services/auth"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for user lookups
type UserHandler struct {
	authUC auth.AuthUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUC auth.AuthUC) *UserHandler {
	return &UserHandler{
		authUC: authUC,
	}
}

// GetUser returns the user record for a kiosk user ID
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	user, err := h.authUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to retrieve user",
			logger.Err(err),
			logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Database error occurred")
	}

	return c.JSON(http.StatusOK, user)
}
