// Package common defines shared constants and sentinel errors used across
// client and server layers of filekeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrValidation     = errors.New("validation error")
	ErrParentNotFound = fmt.Errorf("%w: parent folder does not exist", ErrValidation)

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors. A missing token and a rejected token are kept apart.
	ErrMissingToken = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)
