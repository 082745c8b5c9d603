package users

import "errors"

var (
	// ErrNotFound is returned when a user does not exist
	ErrNotFound = errors.New("user not found")
	// ErrValidation wraps malformed or missing request fields
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on unknown username or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned when logging into a deactivated account
	ErrAccountDisabled = errors.New("user account is disabled")
)
