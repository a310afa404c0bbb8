// Package response writes the JSON envelopes every API route answers with:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "cleanrecord/internal/delivery/context"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/errors"

	"github.com/labstack/echo/v4"
)

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

// DataBody is the success envelope.
type DataBody struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// Problem describes a failed request. Code is stable and machine readable,
// Message is safe to show to an end user.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ProblemBody is the error envelope.
type ProblemBody struct {
	Error Problem `json:"error"`
	Meta  Meta    `json:"meta"`
}

func metaFor(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data inside the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataBody{Data: data, Meta: metaFor(c)})
}

// Error writes the error envelope. Details are dropped for 401, 403 and 5xx responses.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ProblemBody{
		Error: Problem{Code: errorCode, Message: message, Details: details},
		Meta:  metaFor(c),
	})
}

// BindingError answers 400 for a body or parameter that could not be decoded.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// ValidationFailed answers 400 listing the offending fields.
func ValidationFailed(c echo.Context, fields []string) error {
	var details any
	if len(fields) > 0 {
		details = fields
	}

	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

// HandleAppError renders a business error. Anything else is returned with a
// stack so the central error handler logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := AsAppError(err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
	}

	return errors.WithStack(err)
}

// AsAppError finds the business error in err's chain.
func AsAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return nil, false
	}

	return appErr, true
}

func detailsOf(appErr domainerrors.AppError) any {
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}
