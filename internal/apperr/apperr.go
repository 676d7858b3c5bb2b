package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is the closed set of failure categories the service can raise.
// Every component signals failure through one of these kinds; nothing
// else crosses a component boundary.
type Kind int

const (
	// KindBadRequest is invalid input from the client (400).
	KindBadRequest Kind = iota
	// KindUnauthorized means authentication is required or failed (401).
	KindUnauthorized
	// KindForbidden means the caller lacks permission (403).
	KindForbidden
	// KindNotFound means the requested resource does not exist (404).
	KindNotFound
	// KindConflict means the resource is in a conflicting state (409).
	KindConflict
	// KindValidation means input failed field-level validation (422).
	KindValidation
	// KindRateLimited means the caller exceeded a rate limit (429).
	KindRateLimited
	// KindInternal is an unexpected server-side failure (500).
	KindInternal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed application failure. It carries everything the error
// handler needs to build a client-safe response: the kind, a short
// machine-readable code, an operational flag and, for validation
// failures, a field-level message map.
type Error struct {
	Kind        Kind
	Code        string
	Message     string
	Errors      map[string][]string
	Operational bool
	cause       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}

	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error that triggered this failure.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// BadRequest creates a 400 failure.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Code: "BAD_REQUEST", Message: message, Operational: true}
}

// Unauthorized creates a 401 failure.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: "UNAUTHORIZED", Message: message, Operational: true}
}

// Forbidden creates a 403 failure.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: message, Operational: true}
}

// NotFound creates a 404 failure.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: message, Operational: true}
}

// Conflict creates a 409 failure.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: message, Operational: true}
}

// Validation creates a 422 failure carrying a map of field names to
// validation messages.
func Validation(message string, errs map[string][]string) *Error {
	return &Error{
		Kind:        KindValidation,
		Code:        "VALIDATION_ERROR",
		Message:     message,
		Errors:      errs,
		Operational: true,
	}
}

// RateLimited creates a 429 failure.
func RateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Code: "RATE_LIMIT_EXCEEDED", Message: message, Operational: true}
}

// Internal creates a 500 failure. Pass operational=false for bug-class
// errors whose message must not reach clients outside dev mode.
func Internal(message string, operational bool) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: message, Operational: operational}
}

// FromValidation converts validator.ValidationErrors into a Validation
// failure with one message list per offending field.
func FromValidation(verrs validator.ValidationErrors) *Error {
	errs := make(map[string][]string, len(verrs))

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		errs[field] = append(errs[field], fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}

	return Validation("Validation failed", errs)
}

// From extracts a typed failure from an error chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// IsOperational reports whether err is an expected, handleable failure.
// Untyped errors are never operational.
func IsOperational(err error) bool {
	if e, ok := From(err); ok {
		return e.Operational
	}

	return false
}

// IsKind reports whether err is a typed failure of the given kind.
func IsKind(err error, kind Kind) bool {
	if e, ok := From(err); ok {
		return e.Kind == kind
	}

	return false
}
