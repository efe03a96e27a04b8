package domain

import "errors"

// Domain errors (no external dependencies). Adapters wrap store failures with
// %w; handlers map these sentinels to HTTP status codes.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("duplicate resource")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyApproved  = errors.New("transaction already approved")
)
