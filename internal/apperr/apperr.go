// Package apperr defines the error taxonomy shared by every domain package.
//
// Domain sentinels are *Error values tagged with a Kind. Handlers classify any
// error with KindOf and translate it to an HTTP status with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for reporting.
type Kind int

const (
	// KindInternal is an unexpected failure (store, encoding, bug).
	KindInternal Kind = iota
	// KindValidation is missing or malformed input.
	KindValidation
	// KindAuthentication is missing or bad credentials.
	KindAuthentication
	// KindAuthorization is a wrong role or foreign team.
	KindAuthorization
	// KindNotFound is a reference to an entity that does not exist.
	KindNotFound
	// KindConflict is a violated uniqueness or referential guard.
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error

	public bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error with a user-facing message.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Generic failures not tied to a domain.
var (
	ErrUnauthenticated = New(KindAuthentication, "authentication required")
	ErrForbidden       = New(KindAuthorization, "access denied")
	ErrRouteNotFound   = New(KindNotFound, "Route not found")
)

// KindOf returns the kind of the first *Error in err's chain.
// Unclassified errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Messages that never reveal which check failed.
const (
	MsgNotAuthorized = "Not authorized"
	MsgInternal      = "Internal server error"
)

// PublicMessage returns the message safe to show a client.
// Authentication and authorization failures share one generic message unless
// the error was created with Public.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return MsgInternal
	}
	switch appErr.Kind {
	case KindInternal:
		return MsgInternal
	case KindAuthentication, KindAuthorization:
		if appErr.public {
			return appErr.Message
		}
		return MsgNotAuthorized
	default:
		return appErr.Message
	}
}

// Public creates an error whose message is shown verbatim even for
// authentication and authorization kinds.
func Public(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, public: true}
}
