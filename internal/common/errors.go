// Package common defines shared constants and sentinel errors used across
// the MealSnap server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. ErrMissingCredential means no authorization header was
	// present at all; ErrInvalidToken covers malformed structure and bad
	// signatures; ErrTokenExpired is only returned for a well-formed token
	// whose expiry has passed.
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")

	// ErrUploadUnavailable is returned when the object storage backend
	// cannot issue a presigned upload URL.
	ErrUploadUnavailable = errors.New("upload capability unavailable")
)
