package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeCampaignNotFound      = "CAMPAIGN_NOT_FOUND"
	CodeSegmentNotFound       = "SEGMENT_NOT_FOUND"
	CodeSubscriptionNotFound  = "SUBSCRIPTION_NOT_FOUND"
	CodeCampaignNotEditable   = "CAMPAIGN_NOT_EDITABLE"
	CodeCampaignNotSendable   = "CAMPAIGN_NOT_SENDABLE"
	CodeCampaignNotCancelable = "CAMPAIGN_NOT_CANCELABLE"
	CodeScheduledAtRequired   = "SCHEDULED_AT_REQUIRED"
	CodeInvalidConditions     = "INVALID_CONDITIONS"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodePushServiceError      = "PUSH_SERVICE_ERROR"
	CodeInternalError         = "INTERNAL_ERROR"
)

// APIError carries the HTTP status and client-facing message for an error.
// Internal wraps the underlying cause for logging; it is never serialized.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 error that keeps the internal cause for logging
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internalErr}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internalErr,
	}
}
