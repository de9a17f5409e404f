package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business error code, so that
// errors.Is(err, ErrChargesDisabled) holds for copies made by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication and ownership errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid authorization token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Not your business",
		"",
	)

	// Lookup errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	ErrInvalidItemPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ITEM_PRICE",
		"Item price is not a valid non-negative amount",
		"",
	)

	ErrShippingAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"SHIPPING_ADDRESS_REQUIRED",
		"A shipping address is required for this item",
		"",
	)

	// Payment provider configuration errors
	ErrProviderNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_NOT_CONFIGURED",
		"Stripe not configured",
		"",
	)

	ErrProviderError = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_ERROR",
		"Payment provider request failed",
		"",
	)

	// Connected account state errors
	ErrAccountNotCreated = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATE",
		"No Stripe account",
		"",
	)

	ErrNotConnected = NewBaseError(
		http.StatusBadRequest,
		"NOT_CONNECTED",
		"Business not connected to Stripe",
		"",
	)

	ErrMisconfiguredDestination = NewBaseError(
		http.StatusBadRequest,
		"MISCONFIGURED_DESTINATION",
		"Configured Stripe account is your platform account. Use Connect to create a connected account for this business.",
		"",
	)

	ErrInvalidConnectedAccount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONNECTED_ACCOUNT",
		"Stripe account ID is not connected to this platform. Use the Connect flow instead of pasting an ID.",
		"",
	)

	ErrChargesDisabled = NewBaseError(
		http.StatusBadRequest,
		"CHARGES_DISABLED",
		"Stripe account not ready: charges disabled. Complete onboarding first.",
		"",
	)

	ErrCheckoutCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CHECKOUT_CREATION_FAILED",
		"Checkout session could not be created",
		"",
	)

	// Webhook errors
	ErrSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_INVALID",
		"Webhook signature verification failed",
		"",
	)

	ErrWebhookPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"WEBHOOK_PERSISTENCE_FAILED",
		"Webhook event could not be applied",
		"",
	)

	// Slug errors
	ErrInvalidSlug = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SLUG",
		"Invalid slug",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"taken",
		"",
	)

	// Order errors
	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"Order status cannot be changed that way",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
