package portal_errors

import "errors"

// Common errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotifierFailed = errors.New("notifier failed")
	ErrNotConfigured  = errors.New("notifier not configured")
)
