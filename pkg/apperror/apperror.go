package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStorage         = errors.New("storage failure")
	ErrInternal        = errors.New("internal server error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTooManyRequests = errors.New("too many requests")
	ErrTooLarge        = errors.New("request entity too large")
)

// GenericMessage is what clients see for anything outside the known error kinds.
const GenericMessage = "Something went wrong!"

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.BaseError, e.Err}
	}
	return []error{e.BaseError}
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewNotFound builds the error returned when a collection has no item with the given id.
// resource is the display name, e.g. "Skill".
func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

// NewValidation reports a missing or malformed required field. msg is shown to clients as is.
func NewValidation(msg string) *AppError {
	return NewAppError(ErrInvalidInput, msg, msg, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewStorageRead(err error) *AppError {
	return NewAppError(ErrStorage, "Failed to read data", "reading the content document failed", err)
}

func NewStorageWrite(err error) *AppError {
	return NewAppError(ErrStorage, "Failed to write data", "writing the content document failed", err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, GenericMessage, details, err)
}

func NewUnauthorized(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, "Invalid credentials", details, err)
}

func NewTooManyRequests(details string) *AppError {
	return NewAppError(ErrTooManyRequests, "Too many requests", details, nil)
}

func NewTooLarge(limit int64, err error) *AppError {
	return NewAppError(ErrTooLarge, "Request body is too large", fmt.Sprintf("body exceeds %d bytes", limit), err)
}

// ToHTTPStatus maps an error to its response status. Validation, not-found and
// storage failures all answer 400; admin clients only read the message.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound), errors.Is(err, ErrStorage):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// ToJSON renders the error body. Only known kinds expose their message.
func ToJSON(err error) gin.H {
	var appErr *AppError
	if errors.As(err, &appErr) && ToHTTPStatus(err) != http.StatusInternalServerError {
		return gin.H{"error": appErr.Message}
	}
	return gin.H{"error": GenericMessage}
}
