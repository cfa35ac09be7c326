package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cropsync/kiosk/internal/pkg/models"
	"github.com/cropsync/kiosk/services/auth"
)

const userColumns = `user_id, name, phone_number, district, village,
		region, client_code, mandal, profile_image_url,
		created_at, card_uid`

// GetUserByID retrieves a user by their kiosk user ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getUserByField(ctx, "user_id", userID)
}

// GetUserByCardUID retrieves a user by their NFC card UID
func (r *UserRepo) GetUserByCardUID(ctx context.Context, cardUID string) (*models.User, error) {
	return r.getUserByField(ctx, "card_uid", cardUID)
}

// getUserByField runs the single-row lookup. field is one of the two fixed
// lookup columns, never caller input.
func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s = ?
	`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", field, err)
	}

	return &user, nil
}
