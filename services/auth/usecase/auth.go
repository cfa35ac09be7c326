package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cropsync/kiosk/internal/pkg/logger"
	"github.com/cropsync/kiosk/internal/pkg/models"
	"github.com/cropsync/kiosk/services/auth"
)

// Fixed operator-facing messages. The two not-found messages differ on
// purpose: a typed ID can be re-entered at the keypad, an unknown card has
// to be provisioned by an administrator.
const (
	msgLoginSuccessful   = "Login successful"
	msgInvalidUserID     = "Invalid User ID. Please try again."
	msgCardNotRegistered = "Card not registered. Please contact administrator."
)

// LoginByUserID authenticates a user by their typed kiosk ID.
// A missing record is a normal non-success outcome, not an error; only
// store failures propagate as errors.
func (u *AuthUC) LoginByUserID(ctx context.Context, userID string) (*models.LoginResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, auth.ErrEmptyUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			logger.Info("Login rejected: unknown user ID",
				logger.String("user_id", userID))
			return &models.LoginResponse{
				Success: false,
				Message: msgInvalidUserID,
			}, nil
		}
		return nil, fmt.Errorf("login by user id: %w", err)
	}

	return u.issueSession(user)
}

// LoginByCard authenticates a user by their NFC card UID. The minted token
// always asserts the record's user_id, never the card UID.
func (u *AuthUC) LoginByCard(ctx context.Context, cardUID string) (*models.LoginResponse, error) {
	cardUID = strings.TrimSpace(cardUID)
	if cardUID == "" {
		return nil, auth.ErrEmptyCardUID
	}

	user, err := u.userRepo.GetUserByCardUID(ctx, cardUID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			logger.Info("Login rejected: unregistered card",
				logger.String("card_uid", cardUID))
			return &models.LoginResponse{
				Success: false,
				Message: msgCardNotRegistered,
			}, nil
		}
		return nil, fmt.Errorf("login by card: %w", err)
	}

	return u.issueSession(user)
}

// issueSession mints a session token for an authenticated record
func (u *AuthUC) issueSession(user *models.User) (*models.LoginResponse, error) {
	token, expiresAt, err := u.tokens.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Login successful",
		logger.String("user_id", user.UserID),
		logger.Int64("expires_at", expiresAt))

	return &models.LoginResponse{
		Success: true,
		Message: msgLoginSuccessful,
		User:    user,
		Token:   &token,
	}, nil
}

// GetUser retrieves a user record without minting a token
func (u *AuthUC) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// VerifyToken checks a presented session token. It never fails: malformed,
// expired and tampered tokens all collapse into the same invalid result.
func (u *AuthUC) VerifyToken(token string) *models.TokenVerifyResponse {
	userID, err := u.tokens.ValidateToken(token)
	if err != nil {
		return &models.TokenVerifyResponse{Valid: false}
	}

	return &models.TokenVerifyResponse{
		Valid:  true,
		UserID: &userID,
	}
}
