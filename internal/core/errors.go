// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnexpected   = errors.New("unexpected error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Storage level violations. Store adapters translate driver errors into
	// these so nothing above them sees pgconn or sqlite error types.
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenRevoked = errors.New("token revoked")
)

// AppError is a classified failure carrying a client safe message.
type AppError struct {
	Kind    error
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsDomain reports whether err already belongs to one of the client facing
// kinds, as opposed to a raw infrastructure failure.
func IsDomain(err error) bool {
	return Kind(err) != ErrUnexpected
}

// Kind classifies err into one of the top level sentinels.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicateKey):
		return ErrConflict
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrForeignKey):
		return ErrInvalidInput
	case errors.Is(err, ErrInvalidState):
		return ErrInvalidState
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenRevoked):
		return ErrUnauthorized
	case errors.Is(err, ErrForbidden):
		return ErrForbidden
	default:
		return ErrUnexpected
	}
}

func NotFoundError(resource string, key any) *AppError {
	return &AppError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, key),
	}
}

func NotFoundMessage(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: ErrConflict, Message: message}
}

func InvalidInputError(message string) *AppError {
	return &AppError{Kind: ErrInvalidInput, Message: message}
}

func InvalidStateError(message string) *AppError {
	return &AppError{Kind: ErrInvalidState, Message: message}
}

func UnexpectedError(err error) *AppError {
	return &AppError{
		Kind:    ErrUnexpected,
		Message: "an unexpected error occurred",
		Err:     err,
	}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

func ForbiddenError(message string) *AppError {
	return &AppError{Kind: ErrForbidden, Message: message}
}

func TokenExpiredError() *AppError {
	return &AppError{
		Kind:    ErrUnauthorized,
		Message: "token has expired",
		Err:     ErrTokenExpired,
	}
}

func TokenInvalidError() *AppError {
	return &AppError{
		Kind:    ErrUnauthorized,
		Message: "token is invalid",
		Err:     ErrTokenInvalid,
	}
}

func TokenRevokedError() *AppError {
	return &AppError{
		Kind:    ErrUnauthorized,
		Message: "token has been revoked",
		Err:     ErrTokenRevoked,
	}
}
