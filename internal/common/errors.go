// Package common defines shared constants and sentinel errors used across
// the service, repository and transport layers. Callers should use errors.Is
// to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")
	ErrAlreadyExists   = errors.New("already exists")

	// Malformed requests: missing employee id, unknown session type, bad coordinates.
	ErrValidation = errors.New("validation error")

	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrorNotFound)
	ErrLocationNotFound = fmt.Errorf("location %w", ErrorNotFound)

	// Infrastructure errors.
	ErrInfrastructure         = errors.New("infrastructure error")
	ErrStorageTimeout         = fmt.Errorf("storage timeout: %w", ErrInfrastructure)
	ErrConcurrentModification = fmt.Errorf("concurrent modification: %w", ErrInfrastructure)
	ErrLocationUnavailable    = fmt.Errorf("location unavailable: %w", ErrInfrastructure)

	// ErrDescriptorShape marks an enrolled/captured descriptor mismatch. It is an
	// upstream defect and is never retried.
	ErrDescriptorShape = errors.New("descriptor shape mismatch")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = fmt.Errorf("token expired: %w", ErrInvalidToken)
)

// Validationf returns an error wrapping ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
