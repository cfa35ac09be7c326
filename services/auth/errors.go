package auth

import "errors"

var (
	// ErrUserNotFound is returned by the repository when no record matches.
	// It is a normal outcome for the login paths and a 404 for direct fetch.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyUserID rejects a login attempt before any store access
	ErrEmptyUserID = errors.New("user id is required")

	// ErrEmptyCardUID rejects a card login before any store access
	ErrEmptyCardUID = errors.New("card uid is required")
)
