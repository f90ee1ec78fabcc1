package domain

import "errors"

// Error taxonomy. The service layer returns these sentinels; the HTTP error
// handler translates each kind to a fixed status code.
var (
	// AlreadyExists (400)
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already taken")

	// NotFound (404)
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	// Unauthenticated (401). Bad username and bad password share one error so
	// login responses never reveal which was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Forbidden (403)
	ErrForbidden = errors.New("access forbidden")

	// Validation (422)
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid order status")

	// Too many requests (429)
	ErrTooManyAttempts = errors.New("too many login attempts")
)
