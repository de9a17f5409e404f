// Package response renders JSON bodies for the HTTP API.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// codeCheckoutCreationFailed keeps its provider message visible even though it is a 500.
const codeCheckoutCreationFailed = "CHECKOUT_CREATION_FAILED"

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Code      string     `json:"code"`    // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message   string     `json:"message"` // User-friendly error message
	Error     *ErrorInfo `json:"error"`
	RequestID string     `json:"requestId,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success writes the payload as is; clients read plain objects such as {url}.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent answers 204
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if !exposeDetails(statusCode, errorCode) {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    errorCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// exposeDetails hides details of server and authentication errors, except for
// checkout failures whose details are the provider's own message.
func exposeDetails(statusCode int, errorCode string) bool {
	if errorCode == codeCheckoutCreationFailed {
		return true
	}

	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
