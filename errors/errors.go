// Package errors defines the closed set of client-facing API errors and the
// single mapping from error type to HTTP status.
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError     ErrorType = "VALIDATION_ERROR"
	NotFoundError       ErrorType = "NOT_FOUND"
	AuthError           ErrorType = "AUTHENTICATION_ERROR"
	ForbiddenError      ErrorType = "FORBIDDEN"
	ServerError         ErrorType = "SERVER_ERROR"
	MediaTypeError      ErrorType = "UNSUPPORTED_MEDIA_TYPE"
	NotImplementedError ErrorType = "NOT_IMPLEMENTED"
)

// AppError is a structured application error. Handlers attach one to the gin
// context; the error-handling middleware is the only place it is rendered.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the transport status for the error, falling back to
// the type mapping when no explicit status was set.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError with the status derived from the error type.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper constructors for the closed error set.

func BadRequest(message string, detail string) *AppError {
	return New(ValidationError, message, detail)
}

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func Unauthorized(message string) *AppError {
	return New(AuthError, message, "")
}

func Forbidden(message string, detail string) *AppError {
	return New(ForbiddenError, message, detail)
}

func InternalServerError(message string) *AppError {
	return New(ServerError, message, "")
}

func UnsupportedMediaType(contentType string) *AppError {
	return &AppError{
		Type:       MediaTypeError,
		Message:    "Unsupported media type",
		Detail:     contentType,
		HTTPStatus: http.StatusUnsupportedMediaType,
	}
}

func NotImplemented(message string) *AppError {
	return New(NotImplementedError, message, "")
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case MediaTypeError:
		return http.StatusUnsupportedMediaType
	case NotImplementedError:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
