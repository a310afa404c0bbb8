// Package errors defines the business errors usecases return and the HTTP
// status and machine-readable code each one maps to.
package errors

import (
	"net/http"

	"cleanrecord/internal/errors"
)

// AppError is an error that knows how it should be presented to an API client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context shown to clients on 4xx responses only.
	Details() string
}

// BaseError is an immutable AppError value. Derive variants with WithDetails
// instead of mutating the predefined errors below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds internal context for logs while keeping errors.Is matching the sentinel.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying client-facing details. The copy no longer
// matches the original with errors.Is; compare ErrorCode instead.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Authentication
var (
	ErrUnauthorized = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
	ErrInvalidToken = newError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
)

// Input validation
var (
	ErrValidationFailed   = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields")
	ErrAddressNameTooLong = newError(http.StatusBadRequest, "ADDRESS_NAME_TOO_LONG", "Address name must be at most 16 characters")
	ErrInvalidSchedule    = newError(http.StatusBadRequest, "INVALID_SCHEDULE", "Invalid date or time")
	ErrInvalidServiceType = newError(http.StatusBadRequest, "INVALID_SERVICE_TYPE", "Unknown service type")
	ErrInvalidRating      = newError(http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
	ErrAddressIDMissing   = newError(http.StatusBadRequest, "ADDRESS_ID_MISSING", "Missing address ID")
	ErrBookingIDMissing   = newError(http.StatusBadRequest, "BOOKING_ID_MISSING", "Missing booking ID")
)

// Ownership and lookup. ErrAddressNotFound also covers addresses owned by someone else.
var (
	ErrAddressNotFound   = newError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address not found or unauthorized")
	ErrSessionNotFound   = newError(http.StatusNotFound, "SESSION_NOT_FOUND", "Booking not found")
	ErrSessionForbidden  = newError(http.StatusForbidden, "SESSION_FORBIDDEN", "Booking belongs to another user")
	ErrLiveInputNotFound = newError(http.StatusNotFound, "LIVE_INPUT_NOT_FOUND", "Live input not found")
)

// Session state
var (
	ErrSessionNotEditable      = newError(http.StatusConflict, "SESSION_NOT_EDITABLE", "Only scheduled bookings can be changed")
	ErrSessionNotReviewable    = newError(http.StatusConflict, "SESSION_NOT_REVIEWABLE", "Only completed sessions can be reviewed")
	ErrInvalidStatusTransition = newError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Invalid session status transition")
	ErrConflict                = newError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

var ErrBookingRateLimited = newError(http.StatusTooManyRequests, "RATE_LIMITED", "Too many booking requests")

// DatabaseExecuteError reports a failed store operation. The driver error is
// kept for logs and never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error; details names the operation, e.g. "create session".
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
