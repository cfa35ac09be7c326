package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cropsync/kiosk/internal/pkg/logger"
	"github.com/cropsync/kiosk/internal/pkg/models"
	"github.com/cropsync/kiosk/internal/utils"
	"github.com/cropsync/kiosk/services/auth"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login authenticates a user by the ID typed on the kiosk keypad
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for login",
			logger.Err(err),
			logger.String("endpoint", "Login"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginByUserID(c.Request().Context(), req.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyUserID) {
			return utils.BadRequestResponse(c, "User ID is required")
		}
		logger.Error("Login failed",
			logger.Err(err),
			logger.String("user_id", strings.TrimSpace(req.UserID)))
		return utils.InternalServerErrorResponse(c, "Database error occurred")
	}

	return c.JSON(http.StatusOK, resp)
}

// LoginByCard authenticates a user by NFC card UID
func (h *AuthHandler) LoginByCard(c echo.Context) error {
	var req models.CardLoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for card login",
			logger.Err(err),
			logger.String("endpoint", "LoginByCard"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginByCard(c.Request().Context(), req.CardUID)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyCardUID) {
			return utils.BadRequestResponse(c, "Card UID is required")
		}
		logger.Error("Card login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Database error occurred")
	}

	return c.JSON(http.StatusOK, resp)
}

// VerifyToken checks whether a presented session token is still valid.
// The response is always 200; validity is carried in the body.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req models.VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// An absent or empty token is just another invalid token
	return c.JSON(http.StatusOK, h.authUC.VerifyToken(req.Token))
}
