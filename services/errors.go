package services

import "errors"

// Sentinel errors for the handler layer to map onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGameNotFound       = errors.New("game not found")
	ErrForbidden          = errors.New("operation not allowed for this role")
	ErrInvalidScore       = errors.New("score must be between 1 and 100")
	ErrAlreadyReleased    = errors.New("game has already been released")
	ErrInvalidType        = errors.New("invalid update type")
)
