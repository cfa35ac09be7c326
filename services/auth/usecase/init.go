package usecase

import (
	"github.com/cropsync/kiosk/internal/pkg/jwt"
	"github.com/cropsync/kiosk/services/auth"
)

// AuthUC implements the login decision logic
type AuthUC struct {
	userRepo auth.UserRepo
	tokens   *jwt.TokenManager
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(userRepo auth.UserRepo, tokens *jwt.TokenManager) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		tokens:   tokens,
	}
}
