package models

// LoginRequest is the payload for keypad login
type LoginRequest struct {
	UserID string `json:"user_id"`
}

// CardLoginRequest is the payload for NFC card login
type CardLoginRequest struct {
	CardUID string `json:"card_uid"`
}

// LoginResponse is returned by both login paths. User and Token are non-nil
// iff Success is true.
type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    *User   `json:"user"`
	Token   *string `json:"token"`
}

// VerifyTokenRequest is the payload for token verification
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// TokenVerifyResponse is the structured result of token verification.
// UserID is nil whenever Valid is false.
type TokenVerifyResponse struct {
	Valid  bool    `json:"valid"`
	UserID *string `json:"user_id"`
}
