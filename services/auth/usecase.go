package auth

import (
	"context"

	"github.com/cropsync/kiosk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cropsync/kiosk/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	LoginByUserID(ctx context.Context, userID string) (*models.LoginResponse, error)
	LoginByCard(ctx context.Context, cardUID string) (*models.LoginResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	VerifyToken(token string) *models.TokenVerifyResponse
}
