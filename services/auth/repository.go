package auth

import (
	"context"

	"github.com/cropsync/kiosk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cropsync/kiosk/services/auth UserRepo

// UserRepo is the credential store gateway. Both lookups are exact-match
// single-row reads; a missing row is ErrUserNotFound, never a nil record.
type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByCardUID(ctx context.Context, cardUID string) (*models.User, error)
}
