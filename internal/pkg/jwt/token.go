package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/cropsync/kiosk/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers every verification failure: malformed token, wrong
// signature, expired claim, missing user_id. Callers must not be able to
// tell these apart.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies kiosk session tokens. The secret is
// injected at construction and never read from ambient state.
type TokenManager struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenManager creates a token manager from JWT configuration.
// An empty secret is a configuration error, not a silent default.
func NewTokenManager(cfg models.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	hours := cfg.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		expiration: time.Duration(hours) * time.Hour,
	}, nil
}

// GenerateToken generates a signed session token for the given user ID
func (m *TokenManager) GenerateToken(userID string) (string, int64, error) {
	expiresAt := time.Now().Add(m.expiration).Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature and expiry of a presented token and
// returns the user ID it asserts. Any failure returns ErrInvalidToken.
func (m *TokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
