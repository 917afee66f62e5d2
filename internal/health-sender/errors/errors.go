package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrHealthDataUnavailable = errors.New("health data is not available on this device")
	ErrNotAuthorized         = errors.New("health data access has not been authorized")
	ErrUnknownSampleKind     = errors.New("unknown sample kind")
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrIncompatibleUnit      = errors.New("incompatible unit")
	ErrSampleUnavailable     = errors.New("no sample available")
	ErrTransportFailure      = errors.New("transport failure")
)

// AuthorizationError means the platform could not even ask for access, as opposed to the user
// declining it.
type AuthorizationError struct {
	Err error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization request failed: %v", e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

func NewAuthorizationError(err error) error {
	return &AuthorizationError{
		Err: err,
	}
}
