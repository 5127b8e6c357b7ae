package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError. The HTTP layer relays the paired status;
// services and repositories only ever speak in these codes.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUnprocessable = "UNPROCESSABLE"
	CodeInternal      = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError is the application error type returned by services and
// repositories. Code is machine-checkable; Status is the HTTP status the
// transport layer should relay.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a malformed or out-of-range input field.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError reports an absent referenced entity.
func NewNotFoundError(resource string, key interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Status:  fiber.StatusNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, key),
	}
}

// NewConflictError reports a business-rule violation: maintenance-blocked
// vehicle, duplicate request, overlapping approved reservation, or an
// illegal state transition.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Status:  fiber.StatusConflict,
		Message: message,
	}
}

// NewUnprocessableError reports a payload that parsed but cannot be
// interpreted as a request.
func NewUnprocessableError(message string) *AppError {
	return &AppError{
		Code:    CodeUnprocessable,
		Status:  fiber.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewInternalError wraps an unexpected failure, including stored data that
// violates an invariant (corruption, not caller error).
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondWithError writes a standardized error response, deriving the HTTP
// status from the AppError when available.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Status != 0 {
			status = appErr.Status
		}
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
