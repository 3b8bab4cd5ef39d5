// Package errors provides standardized error handling for the activity signup API.
package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"
	ErrCodeMissingEmail     ErrorCode = "MISSING_EMAIL"
	ErrCodeCatalogInvalid   ErrorCode = "CATALOG_INVALID"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured application error that maps onto an
// HTTP status code and a client-visible detail message.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Status  int       `json:"-"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFound signals a lookup for an unknown activity name.
func NewActivityNotFound(name string) *APIError {
	return &APIError{
		Code:    ErrCodeActivityNotFound,
		Message: "Activity not found",
		Status:  http.StatusNotFound,
		Details: fmt.Sprintf("activity: %s", name),
	}
}

// NewAlreadySignedUp signals a duplicate signup for the same activity.
func NewAlreadySignedUp(email, activity string) *APIError {
	return &APIError{
		Code:    ErrCodeAlreadySignedUp,
		Message: "Student is already signed up for this activity",
		Status:  http.StatusBadRequest,
		Details: fmt.Sprintf("email: %s, activity: %s", email, activity),
	}
}

// NewNotRegistered signals unregistering an email that is not a participant.
func NewNotRegistered(email, activity string) *APIError {
	return &APIError{
		Code:    ErrCodeNotRegistered,
		Message: "Student is not registered for this activity",
		Status:  http.StatusBadRequest,
		Details: fmt.Sprintf("email: %s, activity: %s", email, activity),
	}
}

// NewMissingEmail signals a signup/unregister request without the email query parameter.
func NewMissingEmail() *APIError {
	return &APIError{
		Code:    ErrCodeMissingEmail,
		Message: "Query parameter 'email' is required",
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewCatalogInvalid signals a catalog file that failed schema validation.
func NewCatalogInvalid(details string) *APIError {
	return &APIError{
		Code:    ErrCodeCatalogInvalid,
		Message: "Activity catalog failed validation",
		Status:  http.StatusInternalServerError,
		Details: details,
	}
}

// ==========================
// 3. Helpers
// ==========================

// Normalize ensures we always have an APIError.
func Normalize(err error) *APIError {
	var apiErr *APIError
	if goerrors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		Code:    ErrCodeInternal,
		Message: "Unexpected error",
		Status:  http.StatusInternalServerError,
		Details: err.Error(),
	}
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	if goerrors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
